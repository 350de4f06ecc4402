package auth

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestUserInContext(t *testing.T) {
	is := is.New(t)
	is.True(UserFromContext(context.Background()) == nil)

	ctx := StoreUserInContext(context.Background(), 42, "cesar")
	u := UserFromContext(ctx)
	is.Equal(*u, AuthedUser{DBID: 42, Username: "cesar"})
}
