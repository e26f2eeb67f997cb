// Package session drives a machine over message streams.
//
// A stream is a sequence of lines. Setup lines start with "*":
//
//	$ cat message.in
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//	FROM HIS SHOULDER HIAWATHA
//
// They name the reflector and the rotors left to right, give the initial
// settings of the non-reflector rotors, and optionally list plugboard pairs.
// Every other non-blank line is a message: its whitespace is removed, it is
// converted with the machine's state carried over from the previous line,
// and the result is written in groups of five symbols.
//
// Blank lines are copied to the output, except a blank final line. The first
// non-blank line of a stream must be a setup line; later setup lines
// reconfigure the same machine.
//
// Failures carry the 1-based input line through *LineError; the underlying
// sentinels (ErrNoSetup, ErrBadSetup, ErrInvalidSymbol and those of the
// machine package) stay reachable with errors.Is.
//
// RunBatch processes many independent streams concurrently, one machine
// per stream.
package session
