// Package periodogram implements the classic Lomb-Scargle periodogram for
// unevenly sampled light curves.
//
// The periodogram is evaluated on a caller-supplied frequency grid with the
// Scargle (1982) time-offset correction, normalized by the sample variance.
// The best period corresponds to the tallest interior local maximum of the
// power spectrum, so a monotonic spectrum with no true peak yields no
// detection rather than an endpoint.
//
//	freqs := periodogram.Frequencies(0.5, 50, 100000)
//	power, err := periodogram.Power(lc, freqs)
//	period, ok := periodogram.Peak(freqs, power)
package periodogram
