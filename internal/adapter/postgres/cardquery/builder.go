// Package cardquery renders the COUNT, SELECT and paginated SELECT statements
// for a filtered card listing of a single deck.
//
// One predicate serves all status filters: the filter picks a join variant
// once, and every other condition is accumulated as an ordered clause list,
// so placeholder numbering always follows clause order.
package cardquery

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const (
	cardsTable = "cards c"
	knownJoin  = "known_cards k ON k.card_id = c.id AND k.deck_id = c.deck_id"
)

// psql renders $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// joinKind is the known-status join required by a StatusFilter.
type joinKind int

const (
	joinNone       joinKind = iota // ALL
	joinInner                      // KNOWN_ONLY: a known_cards row must exist
	joinLeftAbsent                 // UNKNOWN_ONLY: a known_cards row must not exist
)

func joinFor(status domain.StatusFilter) joinKind {
	switch status {
	case domain.StatusKnownOnly:
		return joinInner
	case domain.StatusUnknownOnly:
		return joinLeftAbsent
	default:
		return joinNone
	}
}

// Request is a rendered statement with positional arguments.
type Request struct {
	SQL  string
	Args []any
}

// Builder holds the projection, join variant and ordered predicate clauses
// derived from a FilterCriteria. It is immutable; every method returns a value.
type Builder struct {
	projection string
	join       joinKind
	clauses    []sq.Sqlizer
}

// New derives a Builder from criteria. projection is used verbatim as the
// column list of Select and Page.
func New(projection string, criteria domain.FilterCriteria) Builder {
	b := Builder{
		projection: projection,
		join:       joinFor(criteria.Status()),
	}

	b = b.where(sq.Eq{"c.deck_id": criteria.DeckID()})

	if criteria.HasSearch() {
		pattern := "%" + criteria.Search() + "%"
		b = b.where(sq.Or{
			sq.ILike{"c.front": pattern},
			sq.ILike{"c.back": pattern},
			sq.ILike{"c.example": pattern},
		})
	}

	if b.join == joinLeftAbsent {
		b = b.where(sq.Eq{"k.card_id": nil})
	}

	return b
}

// where returns a copy of b with pred appended. The clause slice is copied
// so builders derived from the same parent never share a backing array.
func (b Builder) where(pred sq.Sqlizer) Builder {
	clauses := make([]sq.Sqlizer, len(b.clauses), len(b.clauses)+1)
	copy(clauses, b.clauses)
	b.clauses = append(clauses, pred)
	return b
}

// Count renders the row-count statement.
func (b Builder) Count() Request {
	return render(b.from("count(*)"))
}

// Select renders the row-selection statement, newest first. The id tiebreak
// keeps the order total when several cards share a creation timestamp.
func (b Builder) Select() Request {
	return render(b.ordered())
}

// Page renders Select restricted to the window of page. LIMIT and OFFSET are
// bound as the last two arguments.
func (b Builder) Page(page domain.PageRequest) Request {
	return render(b.ordered().Suffix("LIMIT ? OFFSET ?", page.Limit(), page.Offset()))
}

func (b Builder) ordered() sq.SelectBuilder {
	return b.from(b.projection).OrderBy("c.created_at DESC", "c.id DESC")
}

func (b Builder) from(columns string) sq.SelectBuilder {
	q := emitJoin(psql.Select(columns).From(cardsTable), b.join)
	for _, c := range b.clauses {
		q = q.Where(c)
	}
	return q
}

// emitJoin is the only place the join variant turns into SQL.
func emitJoin(q sq.SelectBuilder, kind joinKind) sq.SelectBuilder {
	switch kind {
	case joinInner:
		return q.InnerJoin(knownJoin)
	case joinLeftAbsent:
		return q.LeftJoin(knownJoin)
	case joinNone:
		return q
	default:
		panic(fmt.Sprintf("cardquery: unknown join kind %d", kind))
	}
}

func render(q sq.SelectBuilder) Request {
	sql, args, err := q.ToSql()
	if err != nil {
		// The clause set is fixed; a render failure is a programming error.
		panic(fmt.Sprintf("cardquery: render: %v", err))
	}
	return Request{SQL: sql, Args: args}
}
