package domain

type CtxKey string

const (
	KeySubject   CtxKey = "Subject"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)

// RoleAdmin is the JWT role allowed to read stored messages.
const RoleAdmin = "admin"
