package validators

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("ana@example.com"))
	assert.NoError(t, Email("a.b+tag@sub.example.org"))

	assert.ErrorIs(t, Email("not-an-email"), ErrBadEmail)
	assert.ErrorIs(t, Email(""), ErrBadEmail)
	assert.ErrorIs(t, Email("Ana <ana@example.com>"), ErrBadEmail)
	assert.ErrorIs(t, Email("ana@"), ErrBadEmail)
}

func TestLegalAge(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, LegalAge("2000-01-01", now))
	// 18th birthday is today
	assert.NoError(t, LegalAge("2008-06-15", now))

	// 18th birthday is tomorrow
	assert.ErrorIs(t, LegalAge("2008-06-16", now), ErrUnderage)
	// same year, earlier month, still 17
	assert.ErrorIs(t, LegalAge("2008-07-01", now), ErrUnderage)
	assert.ErrorIs(t, LegalAge("2020-01-01", now), ErrUnderage)

	assert.ErrorIs(t, LegalAge("15-06-2008", now), ErrBadDate)
	assert.ErrorIs(t, LegalAge("", now), ErrBadDate)
}

func TestLegalAge_MonthDayBoundary(t *testing.T) {
	// born 2008-03-10: legal from 2026-03-10 on
	birth := "2008-03-10"
	for _, tc := range []struct {
		now time.Time
		ok  bool
	}{
		{time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), true},
	} {
		err := LegalAge(birth, tc.now)
		if tc.ok {
			assert.NoError(t, err, tc.now)
		} else {
			assert.ErrorIs(t, err, ErrUnderage, tc.now)
		}
	}
}

func TestSixDigitPIN(t *testing.T) {
	require.NoError(t, SixDigitPIN(100000))
	require.NoError(t, SixDigitPIN(999999))
	require.NoError(t, SixDigitPIN(123456))

	assert.ErrorIs(t, SixDigitPIN(99999), ErrBadPIN)
	assert.ErrorIs(t, SixDigitPIN(1000000), ErrBadPIN)
	assert.ErrorIs(t, SixDigitPIN(0), ErrBadPIN)
	assert.ErrorIs(t, SixDigitPIN(-123456), ErrBadPIN)
}

func TestVideoURL(t *testing.T) {
	assert.NoError(t, VideoURL("http://e.com"))
	assert.NoError(t, VideoURL("https://videos.example.com/watch?v=abc"))

	assert.ErrorIs(t, VideoURL(""), ErrBadURL)
	assert.ErrorIs(t, VideoURL("/relative/path"), ErrBadURL)
	assert.ErrorIs(t, VideoURL("example.com/video"), ErrBadURL)
	assert.ErrorIs(t, VideoURL(fmt.Sprintf("%c://bad", 0x7f)), ErrBadURL)
}
