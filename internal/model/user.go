package model

import "github.com/golang-jwt/jwt/v5"

// PlayerClaims carries the player ID in Subject.
type PlayerClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken string `json:"access_token"`
	PlayerID    string `json:"player_id"`
}
