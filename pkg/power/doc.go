// Package power classifies power-rail measurements for the boot sequencer.
//
// The monitor runs before any thermal check: power and thermal failure modes
// are independent, and the rail must be trustworthy before any other reading
// is trusted. Like the thermal classifier, the monitor never fails outright;
// every input, including an unreadable rail, maps to a defined condition.
package power
