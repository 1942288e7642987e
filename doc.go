// Package algovibe animates the search for the longest defensible stretch
// of a wall: the longest contiguous run of segment strengths that are all
// at least a threat level K.
//
// What is inside
//
//	scan/          the sliding-window scan, step events and immutable snapshots
//	engine/        restartable background runs with stale-event suppression
//	board/         display state folded from engine emissions
//	render/        terminal frames, summary table, explanation, HTML chart, traces
//	cue/           click/success/failure sound cues with a mute switch
//	parse/         comma-separated strength input and threshold parsing
//	wallgen/       deterministic demo walls (pulse, random, ramp)
//	config/        defaults, YAML file and ALGOVIBE_* environment settings
//	metrics/       Prometheus collectors and the /metrics endpoint
//	logging/       zap logger construction
//	cmd/algovibe   the CLI
//
// Quick example:
//
//	S = 10 20  5 30 40 50 15 60 70 80  5 90 100 95,  K = 25
//	    x  x  x  ■  ■  ■  x  ■  ■  ■  x  ■   ■  ■
//
//	three runs of length 3; the earliest, [3,6), is reported.
//
//	go install github.com/ayushran32/Error-404-Algovibe/cmd/algovibe@latest
package algovibe
