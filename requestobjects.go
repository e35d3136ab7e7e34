package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type ctxKey int32

const (
	ctxKeyCommonData ctxKey = iota
)

func WithCommonData(ctx context.Context, cd *CommonData) context.Context {
	return context.WithValue(ctx, ctxKeyCommonData, cd)
}

func LoadCommonData(ctx context.Context) (*CommonData, error) {
	cd, ok := ctx.Value(ctxKeyCommonData).(*CommonData)
	if !ok {
		return nil, fmt.Errorf("no CommonData in ctx")
	}
	return cd, nil
}

func MustLoadCommonData(ctx context.Context) *CommonData {
	cd, err := LoadCommonData(ctx)
	if err != nil {
		panic(err)
	}
	return cd
}

// CommonData is built once per request by requireLogin and travels in the
// request context. Feedback accumulated here is flushed to a cookie on
// redirect and rendered on the next page load.
type CommonData struct {
	BuildKey string
	User     UserData
	Feedback Feedback
}

func (cd *CommonData) Log(format string, args ...any) {
	log.Info().Int32("appuser", cd.User.AppuserID).Msgf(format, args...)
}

func (cd *CommonData) Info(format string, args ...any) {
	cd.addFeedback(FBInfo, format, args...)
}

func (cd *CommonData) Success(format string, args ...any) {
	cd.addFeedback(FBSuccess, format, args...)
}

func (cd *CommonData) Warning(format string, args ...any) {
	cd.addFeedback(FBWarning, format, args...)
}

func (cd *CommonData) Error(format string, args ...any) {
	cd.addFeedback(FBError, format, args...)
}

func (cd *CommonData) addFeedback(fbt FeedbackType, format string, args ...any) {
	cd.Feedback.Items = append(cd.Feedback.Items, FeedbackItem{
		Message: fmt.Sprintf(format, args...),
		Type:    fbt,
	})
}

type UserData struct {
	AppuserID    int32
	DisplayName  string
	Email        string
	AvatarURL    string
	HasAvatarURL bool
	AccessLevel  AccessLevel
}

func (ud *UserData) HasCapability(cap Capability) bool {
	return ud.AccessLevel.HasCapability(cap)
}
