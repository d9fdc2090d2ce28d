package usecase

import "errors"

// Sentinel errors shared by the usecases; handlers map them onto HTTP
// statuses with errors.Is.
var (
	ErrMediaNotFound    = errors.New("media not found")
	ErrFileNotFound     = errors.New("file not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrLikeNotFound     = errors.New("like not found")
	ErrLikeExists       = errors.New("already liked")
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrInvalidRange     = errors.New("invalid range header")
	ErrReplyDepth       = errors.New("replies cannot be nested")
)
