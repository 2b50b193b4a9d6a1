package postgres

import sq "github.com/Masterminds/squirrel"

// Psql is the squirrel statement builder using $N placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
