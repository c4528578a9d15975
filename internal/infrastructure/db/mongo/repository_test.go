package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolio/contact-api/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestUserPatchSet_OnlyProvidedFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 123456789, time.UTC)
	set := userPatchSet(domain.UserPatch{
		FirstName: strPtr("Ada"),
		Password:  strPtr("$2a$10$hash"),
	}, now)

	if set["firstname"] != "Ada" || set["password"] != "$2a$10$hash" {
		t.Fatalf("unexpected set: %+v", set)
	}
	for _, k := range []string{"lastname", "email", "username", "role"} {
		if _, ok := set[k]; ok {
			t.Fatalf("%s should not be set: %+v", k, set)
		}
	}
	if got := set["updatedAt"].(time.Time); !got.Equal(now.Truncate(time.Millisecond)) {
		t.Fatalf("unexpected updatedAt: %v", got)
	}
}

func TestParseID(t *testing.T) {
	if _, err := parseID("not-an-id"); err != errInvalidID {
		t.Fatalf("expected errInvalidID, got %v", err)
	}
	oid := primitive.NewObjectID()
	got, err := parseID(oid.Hex())
	if err != nil || got != oid {
		t.Fatalf("parseID(%s) = %v, %v", oid.Hex(), got, err)
	}
}

func TestMessageListQuery(t *testing.T) {
	query, opts := messageListQuery(domain.MessageFilter{Status: domain.MessageRead, Limit: 20, Offset: 40})
	if query["status"] != "read" {
		t.Fatalf("unexpected query: %+v", query)
	}
	if opts.Limit == nil || *opts.Limit != 20 {
		t.Fatalf("unexpected limit: %v", opts.Limit)
	}
	if opts.Skip == nil || *opts.Skip != 40 {
		t.Fatalf("unexpected skip: %v", opts.Skip)
	}

	query, opts = messageListQuery(domain.MessageFilter{})
	if len(query) != 0 || opts.Limit != nil || opts.Skip != nil {
		t.Fatalf("empty filter should not constrain: %+v %+v", query, opts)
	}
}

func TestMongoUser_ToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	mu := mongoUser{ID: oid, Username: "ab", Role: "admin", Password: "$2a$10$x"}
	u := mu.toDomain()
	if u.ID != oid.Hex() || u.Role != domain.RoleAdmin || u.Password != "$2a$10$x" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
