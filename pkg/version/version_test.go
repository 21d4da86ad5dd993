package version

import "testing"

func TestGet(t *testing.T) {
	v := Get()
	if v.Version == "" || v.GoVersion == "" || v.Platform == "" {
		t.Errorf("Get() = %+v, want all fields populated", v)
	}
}

func TestString(t *testing.T) {
	v := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2024-11-02T15:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}

	got := v.String()
	want := "ingestipy version 1.2.3 (commit: abcdefg) built at 2024-11-02T15:04:05Z with go1.23.1 on linux/amd64"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
