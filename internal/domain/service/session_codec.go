package service

import "storefront/internal/domain/entity"

// SessionCodec seals a session into an opaque cookie value and back.
// Decode must reject tampered, truncated or expired values.
type SessionCodec interface {
	Encode(session *entity.Session) (string, error)
	Decode(value string) (*entity.Session, error)
}
