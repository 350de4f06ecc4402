package puzzleserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/domino14/anagrid/internal/auth"
)

// Issuers whose tokens are accepted.
var Issuers = []string{"aerolith.org", "aerolith.localhost"}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// token's user in the request context.
func JWTMiddleware(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no auth method"})
				return
			}
			ctx, err := authenticateJWT(r.Context(), r.Header, secretKey)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticateJWT(ctx context.Context, reqHeader http.Header, secretKey []byte) (context.Context, error) {
	authHeader := reqHeader.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("no auth method")
	}

	userToken := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(userToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		log.Err(err).Msg("err-parsing-token")
		return nil, errors.New("could not parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("could not parse token claims")
	}
	uidStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("could not parse uid claim")
	}
	uid, err := strconv.Atoi(uidStr)
	if err != nil {
		return nil, errors.New("could not parse uid as an integer")
	}
	iss, err := claims.GetIssuer()
	if err != nil || !slices.Contains(Issuers, iss) {
		return nil, errors.New("unexpected iss claim")
	}
	usn, ok := claims["usn"].(string)
	if !ok || usn == "" {
		return nil, errors.New("unexpected usn claim")
	}
	return auth.StoreUserInContext(ctx, uid, usn), nil
}
