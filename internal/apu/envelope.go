package apu

// Channel1, Channel2 and Channel4 each implement NRx2's volume envelope and
// an 8-bit length counter identically; the three structs keep that state as
// plain fields (channel1_test.go and channel4_test.go poke them directly),
// so the shared behavior lives here as free functions over pointers to
// those fields rather than a nested/embedded struct.

// stepVolumeEnvelope runs one 64 Hz envelope tick: decrement the divider,
// and on reaching zero step current volume toward 0 or 15 and reload it.
// The envelope latches off once volume bottoms out or tops out.
func stepVolumeEnvelope(enabled *bool, period uint8, direction bool, counter *uint8, volume *uint8) {
	if !*enabled || period == 0 {
		return
	}

	*counter--
	if *counter == 0 {
		*counter = period

		if direction && *volume < 15 {
			*volume++
		} else if !direction && *volume > 0 {
			*volume--
		}

		if *volume == 0 || *volume == 15 {
			*enabled = false
		}
	}
}

// triggerVolumeEnvelope reloads envelope state on a channel trigger (bit 7
// of NRx4): the divider restarts from the configured period and volume
// resets to whatever NRx2 last set as the initial volume.
func triggerVolumeEnvelope(counter *uint8, period uint8, volume *uint8, initialVolume uint8, enabled *bool) {
	*counter = period
	*volume = initialVolume
	*enabled = period > 0
}

// decodeEnvelopeRegister decodes an NRx2 write into its three envelope
// fields plus the DAC-enable bit NRx2 also controls (upper 5 bits non-zero).
func decodeEnvelopeRegister(value uint8) (initialVolume uint8, direction bool, period uint8, dacEnabled bool) {
	initialVolume = (value >> 4) & 0x0F
	direction = (value & 0x08) != 0
	period = value & 0x07
	dacEnabled = (value & 0xF8) != 0
	return initialVolume, direction, period, dacEnabled
}

// stepLengthCounter8 runs one 256 Hz length-counter tick for the square and
// noise channels: while length is enabled and the counter hasn't already
// run out, decrement it and disable the channel the instant it hits zero.
func stepLengthCounter8(enabled *bool, lengthEnabled bool, counter *uint8) {
	if lengthEnabled && *counter > 0 {
		*counter--
		if *counter == 0 {
			*enabled = false
		}
	}
}
