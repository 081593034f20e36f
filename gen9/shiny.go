// Package gen9 resolves, generates, and rewards Tera Raid Battle
// encounters for the Scarlet/Violet raid pool: picking a template from a
// seed against the progress-gated star distribution, drawing the
// creature's stats off the same seed, and computing its fixed and
// lottery rewards.
package gen9

// shinyXor is the PID/TID xor value the game's shiny check reduces to: a
// value under 16 is shiny, 0 exactly is Square, anything else is Star.
func shinyXor(a, b uint32) uint32 {
	v := a ^ b
	return (v ^ (v >> 16)) & 0xFFFF
}

func isShiny(id32, pid uint32) bool {
	return shinyXor(pid, id32) < 16
}

// shinyPID rebuilds a PID's upper 16 bits so that it resolves to the
// given xor type against (tid, sid).
func shinyPID(tid, sid uint16, pid uint32, xorType uint32) uint32 {
	low := pid & 0xFFFF
	return ((xorType ^ uint32(tid) ^ uint32(sid) ^ low) << 16) | low
}

// forceShinyState returns pid rewritten so its shininess against id32
// matches wantShiny, or pid unchanged if it already matches.
func forceShinyState(wantShiny bool, pid uint32, id32 uint32, xorType uint32) uint32 {
	if wantShiny {
		if !isShiny(id32, pid) {
			pid = shinyPID(uint16(id32&0xFFFF), uint16(id32>>16), pid, xorType)
		}
		return pid
	}
	if isShiny(id32, pid) {
		pid ^= 0x10000000
	}
	return pid
}
