package mocks

import "github.com/stretchr/testify/mock"

const maxLoggedFields = 8

// NewLoggerAllowingAll returns a Logger mock that accepts any log call with up to
// maxLoggedFields fields.
func NewLoggerAllowingAll(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	l := NewLogger(t)
	for n := 0; n <= maxLoggedFields; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}
