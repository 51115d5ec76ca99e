// Package lcd models the character LCD module driven by the CPU's LCD
// strobes: a DDRAM byte buffer addressed through an HD44780-style command
// byte, a cursor that auto-increments across a line-width gap, and a
// pixel raster derived from the built-in font table.
package lcd
