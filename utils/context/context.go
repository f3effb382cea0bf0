package context

import (
	"context"

	"github.com/muhammadheryan/supply-chain/constant"
	"github.com/muhammadheryan/supply-chain/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserName(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserNameKey)
	if v == nil {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

func GetUserRole(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// GetActor returns the authenticated principal from the request context.
func GetActor(ctx context.Context) (model.Actor, bool) {
	id, ok := GetUserID(ctx)
	if !ok {
		return model.Actor{}, false
	}
	name, _ := GetUserName(ctx)
	return model.Actor{ID: id, Name: name}, true
}
