package store

import (
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/ougirez/motorquote/internal/pkg/constants"
)

const keyPrefix = "motorquote:session:"

var mapping = map[error]error{redis.Nil: constants.ErrSessionNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

func sessionKey(id string) string {
	return keyPrefix + id
}
