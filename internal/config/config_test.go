package config

import "testing"

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.local",
		DBPort:     5433,
		DBName:     "wiki",
		DBUser:     "bot",
		DBPassword: "secret",
	}
	want := "host=db.local port=5433 dbname=wiki user=bot password=secret sslmode=disable client_encoding=UTF8"
	if got := cfg.DSN(); got != want {
		t.Fatalf("unexpected dsn:\n got %q\nwant %q", got, want)
	}
}
