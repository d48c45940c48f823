// Package capture turns recorded lap-timer footage into laps.
//
// ExtractFrames samples still images from a video with ffmpeg. A Recognizer
// reads the timer text from one frame; CommandRecognizer delegates that to an
// external OCR program. Feeder ties the two to a grid column, appending every
// reading that parses as a lap time and skipping the rest.
package capture
