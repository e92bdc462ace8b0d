package postgres_test

import (
	"shareit/config"
	"shareit/infras/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name   string
		target config.Postgres
		prefix string
		want   string
	}{
		{
			name:   "plain",
			target: config.Postgres{Host: "db", Port: "5432", Username: "shareit", Password: "secret", Name: "shareit", SSLMode: "disable"},
			want:   "postgres://shareit:secret@db:5432/shareit?sslmode=disable",
		},
		{
			name:   "prefix and timezone",
			target: config.Postgres{Host: "db", Port: "5432", Username: "u", Password: "p", Name: "shareit", SSLMode: "require", Timezone: "UTC"},
			prefix: "test_",
			want:   "postgres://u:p@db:5432/test_shareit?sslmode=require&timezone=UTC",
		},
		{
			name:   "password is escaped",
			target: config.Postgres{Host: "::1", Port: "5432", Username: "u", Password: "p@ss/word", Name: "shareit", SSLMode: "disable"},
			want:   "postgres://u:p%40ss%2Fword@[::1]:5432/shareit?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgres.DSN(tt.target, tt.prefix))
		})
	}
}
