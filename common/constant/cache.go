package constant

import "time"

const (
	AdminSessionKey      = "admin:session:%s"
	AdminTokenRevokedKey = "admin:token:revoked:%s"
	NoticeKey            = "notice"
)

const (
	NoticeFieldContent   = "content"
	NoticeFieldUpdatedAt = "updated_at"
)

const (
	AdminSessionDefaultTTL = 24 * time.Hour
	AdminTokenDefaultTTL   = 24 * time.Hour
)
