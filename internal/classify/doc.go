// Package classify maps detected circles to ball types.
//
// Classification samples the dominant color of a ball's inner disk,
// converts it to HSV, and matches it against a per-game-mode table of named
// HSV ranges. The tables are fixed data: pool carries ten rules (cue, eight
// ball, seven solids, a striped catch-all) and snooker carries eight (cue
// plus seven named colors with point values).
//
// Ranges may overlap; ties are resolved by the highest computed confidence.
// For pool, a perimeter-brightness refiner then decides solid versus striped
// for every ball that is not the cue or the eight ball.
package classify
