package sql

import (
	"testing"

	"github.com/rossjcooper/laravel-enum/dialect"
)

func BenchmarkSelector_Simple(b *testing.B) {
	for _, d := range []string{dialect.SQLite, dialect.MySQL, dialect.Postgres} {
		b.Run(d, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Select("id", "title", "status").
					From("posts").
					Dialect(d).
					Query()
			}
		})
	}
}

func BenchmarkSelector_ListPredicates(b *testing.B) {
	for _, d := range []string{dialect.SQLite, dialect.MySQL, dialect.Postgres} {
		b.Run(d, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := Select("id").From("posts").Dialect(d)
				s.WhereIn("status", "draft", "published")
				s.OrWhereIn("kind", 0, 1, 2)
				s.WhereNotIn("author_id", 7)
				s.Query()
			}
		})
	}
}
