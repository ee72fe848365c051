package postgre

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"employees-srv/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PostgresConfig
		want string
	}{
		{
			name: "explicit",
			cfg: config.PostgresConfig{
				Host: "db", Port: 5433, User: "app", Password: "secret",
				DBName: "employees", SSLMode: "require", Schema: "hr",
			},
			want: "host=db port=5433 user=app password=secret dbname=employees sslmode=require search_path=hr",
		},
		{
			name: "defaults",
			cfg:  config.PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "employees"},
			want: "host=localhost port=5432 user=postgres password= dbname=employees sslmode=disable search_path=public",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDSN(tt.cfg))
		})
	}
}

func TestHealthCheck_NotConnected(t *testing.T) {
	assert.Error(t, HealthCheck(context.Background()))
}

func TestDisconnect_Nil(t *testing.T) {
	assert.NoError(t, Disconnect(context.Background(), nil))
}
