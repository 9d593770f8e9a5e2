package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{0, "0 米"},
		{999, "999 米"},
		{1000, "1.00 公里"},
		{1234, "1.23 公里"},
		{1500, "1.50 公里"},
		{2000000, "2000.00 公里"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.meters), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.meters))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0分钟"},
		{59, "0分钟"},
		{60, "1分钟"},
		{3599, "59分钟"},
		{3600, "1小时0分钟"},
		{3660, "1小时1分钟"},
		{7380, "2小时3分钟"},
		{86400, "24小时0分钟"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.seconds), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
