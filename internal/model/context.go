package model

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)
