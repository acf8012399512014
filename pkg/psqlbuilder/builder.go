package psqlbuilder

import (
	"github.com/Masterminds/squirrel"
)

// Dialect SQL-диалект хранилища
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создаёт SELECT с плейсхолдерами $N
func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

// Insert создаёт INSERT с плейсхолдерами $N
func Insert(table string) squirrel.InsertBuilder {
	return psql.Insert(table)
}

// Update создаёт UPDATE с плейсхолдерами $N
func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

// Delete создаёт DELETE с плейсхолдерами $N
func Delete(table string) squirrel.DeleteBuilder {
	return psql.Delete(table)
}

// Builder построитель запросов под конкретный диалект
type Builder struct {
	sb      squirrel.StatementBuilderType
	dialect Dialect
}

// New возвращает построитель для диалекта (неизвестный диалект трактуется как postgres)
func New(dialect Dialect) Builder {
	if dialect == SQLite {
		return Builder{sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), dialect: SQLite}
	}
	return Builder{sb: psql, dialect: Postgres}
}

func (b Builder) Dialect() Dialect {
	return b.dialect
}

// SupportsRowLocks true, если диалект понимает SELECT ... FOR UPDATE
func (b Builder) SupportsRowLocks() bool {
	return b.dialect == Postgres
}

func (b Builder) Select(columns ...string) squirrel.SelectBuilder {
	return b.sb.Select(columns...)
}

func (b Builder) Insert(table string) squirrel.InsertBuilder {
	return b.sb.Insert(table)
}

func (b Builder) Update(table string) squirrel.UpdateBuilder {
	return b.sb.Update(table)
}

func (b Builder) Delete(table string) squirrel.DeleteBuilder {
	return b.sb.Delete(table)
}
