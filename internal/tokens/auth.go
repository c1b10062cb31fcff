package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// UserClaims данные JWT токена пользователя. UUID — стабильный
// идентификатор владельца, по нему проверяется принадлежность ссылок.
type UserClaims struct {
	jwt.RegisteredClaims
	UUID string
}

// IssueUserJWT подписывает токен пользователя с заданным сроком жизни.
func IssueUserJWT(uuid string, expire time.Duration, key []byte) (string, error) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		UUID: uuid,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "signing user jwt token")
	}
	return signed, nil
}

// ParseUserJWT проверяет подпись и срок действия токена и возвращает claims.
func ParseUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(UserClaims), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(err, "parsing user jwt token")
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
