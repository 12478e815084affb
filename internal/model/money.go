package model

// ComputeShares derives the profit figures for a visit from the split
// percentages in effect right now. Each share is the net profit times the
// percentage, rounded half-up like the ledger has always rounded, so the
// three shares need not sum exactly to the net profit.
func ComputeShares(s Settings, totalPrice, expenses int64) (net, doctor, clinic, platform int64) {
	net = totalPrice - expenses
	doctor = roundPercent(net, s.DoctorPercent)
	clinic = roundPercent(net, s.ClinicPercent)
	platform = roundPercent(net, s.PlatformPercent)
	return net, doctor, clinic, platform
}

func roundPercent(n int64, percent int) int64 {
	return floorDiv(n*int64(percent)+50, 100)
}

// RoundDiv rounds num/den to the nearest integer, halves up. den must be
// positive; callers guard the zero case themselves.
func RoundDiv(num, den int64) int64 {
	return floorDiv(2*num+den, 2*den)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
