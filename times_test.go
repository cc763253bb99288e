package lnk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiletimeToUnix_Epoch(t *testing.T) {
	// 1970-01-01 in FILETIME ticks.
	assert.Equal(t, int64(0), FiletimeToUnix(116444736000000000))
}

func TestFiletimeToUnix_KnownDate(t *testing.T) {
	// 2009-02-13T23:31:30Z is Unix 1234567890.
	assert.Equal(t, int64(1234567890), FiletimeToUnix(116444736000000000+1234567890*10000000))
}

func TestFatTime_DateOnly(t *testing.T) {
	// Date word 0x4CAF encodes year=38 (2018), month=5, day=15. The date
	// occupies the low half; the time half is zero.
	ft := FatTime(0x00004CAF)

	expected := time.Date(2018, 5, 15, 0, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, expected, ft.Unix())
}

func TestFatTime_DateAndTime(t *testing.T) {
	// Time word 0x8C05 encodes 17:32:10.
	ft := FatTime(0x8C054CAF)

	expected := time.Date(2018, 5, 15, 17, 32, 10, 0, time.UTC).Unix()
	assert.Equal(t, expected, ft.Unix())
}

func TestFatTime_Fields(t *testing.T) {
	ft := FatTime(0x8C054CAF)

	assert.Equal(t, 2018, ft.year())
	assert.Equal(t, 5, ft.month())
	assert.Equal(t, 15, ft.day())
	assert.Equal(t, 17, ft.hour())
	assert.Equal(t, 32, ft.minute())
	assert.Equal(t, 10, ft.second())
}
