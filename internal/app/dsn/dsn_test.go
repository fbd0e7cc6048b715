package dsn

import "testing"

func TestFromEnv(t *testing.T) {
	t.Run("missing mandatory variables", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")
		if got := FromEnv(); got != "" {
			t.Errorf("FromEnv() = %q, want empty", got)
		}
	})

	t.Run("default port", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_USER", "portal")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "visaportal")

		want := "host=localhost port=5432 user=portal password=secret dbname=visaportal sslmode=disable"
		if got := FromEnv(); got != want {
			t.Errorf("FromEnv() = %q, want %q", got, want)
		}
	})
}
