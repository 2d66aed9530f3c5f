package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMongoURI(t *testing.T) {
	assert.True(t, IsMongoURI("mongodb://localhost:27017"))
	assert.True(t, IsMongoURI("mongodb+srv://cluster0.example.net/tracker"))
	assert.False(t, IsMongoURI("postgres://localhost/tracker"))
	assert.False(t, IsMongoURI("sqlite://tracker.db"))
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{name: "database in path", uri: "mongodb://localhost:27017/tracker", want: "tracker"},
		{name: "database with options", uri: "mongodb://u:p@localhost:27017/tracker?authSource=admin", want: "tracker"},
		{name: "no database falls back", uri: "mongodb://localhost:27017", want: "fallback"},
		{name: "trailing slash falls back", uri: "mongodb://localhost:27017/", want: "fallback"},
		{name: "not a mongodb uri", uri: "postgres://localhost/tracker", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatabaseName(tt.uri, "fallback")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
