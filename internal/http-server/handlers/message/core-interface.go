package message

import (
	"ChiwawaRelay/entity"
	"context"
)

type Core interface {
	SendMessage(ctx context.Context, msg *entity.HttpSendMsg) (*entity.SendStatus, error)
}
