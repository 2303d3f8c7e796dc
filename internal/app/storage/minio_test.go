package storage

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestPublicURL(t *testing.T) {
	endpoint, _ := url.Parse("http://localhost:9000")
	got := publicURL(endpoint, "werkbon-fotos", "wo-1/1700000000000000000_voor.jpg")
	want := "http://localhost:9000/werkbon-fotos/wo-1/1700000000000000000_voor.jpg"
	if got != want {
		t.Errorf("publicURL = %q, want %q", got, want)
	}
	if endpoint.Path != "" {
		t.Errorf("endpoint was modified")
	}
}

func TestPublicReadPolicy(t *testing.T) {
	var policy struct {
		Statement []struct {
			Effect   string
			Action   []string
			Resource []string
		}
	}
	if err := json.Unmarshal([]byte(publicReadPolicy("fotos")), &policy); err != nil {
		t.Fatalf("policy is not valid JSON: %v", err)
	}
	st := policy.Statement[0]
	if st.Effect != "Allow" || st.Action[0] != "s3:GetObject" || st.Resource[0] != "arn:aws:s3:::fotos/*" {
		t.Errorf("unexpected statement %+v", st)
	}
}
