package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeShares(t *testing.T) {
	settings := Settings{DoctorPercent: 40, ClinicPercent: 40, PlatformPercent: 20}

	net, doctor, clinic, platform := ComputeShares(settings, 500, 80)
	assert.Equal(t, int64(420), net)
	assert.Equal(t, int64(168), doctor)
	assert.Equal(t, int64(168), clinic)
	assert.Equal(t, int64(84), platform)
}

func TestComputeSharesRoundsHalfUp(t *testing.T) {
	settings := Settings{DoctorPercent: 33, ClinicPercent: 33, PlatformPercent: 34}

	// net = 5, 5*33% = 1.65 -> 2, 5*34% = 1.70 -> 2
	net, doctor, clinic, platform := ComputeShares(settings, 10, 5)
	assert.Equal(t, int64(5), net)
	assert.Equal(t, int64(2), doctor)
	assert.Equal(t, int64(2), clinic)
	assert.Equal(t, int64(2), platform)
}

func TestComputeSharesNegativeNet(t *testing.T) {
	settings := Settings{DoctorPercent: 40, ClinicPercent: 40, PlatformPercent: 20}

	net, doctor, clinic, platform := ComputeShares(settings, 100, 150)
	assert.Equal(t, int64(-50), net)
	assert.Equal(t, int64(-20), doctor)
	assert.Equal(t, int64(-20), clinic)
	assert.Equal(t, int64(-10), platform)
}

func TestComputeSharesZeroNet(t *testing.T) {
	settings := DefaultSettings()

	net, doctor, clinic, platform := ComputeShares(settings, 200, 200)
	assert.Zero(t, net)
	assert.Zero(t, doctor)
	assert.Zero(t, clinic)
	assert.Zero(t, platform)
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		num, den, want int64
	}{
		{10, 3, 3},
		{11, 3, 4},
		{3, 2, 2},
		{100, 10, 10},
		{-3, 2, -1},
		{0, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundDiv(tt.num, tt.den), "RoundDiv(%d, %d)", tt.num, tt.den)
	}
}
