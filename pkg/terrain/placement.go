package terrain

import "fmt"

// Place picks the player's position from the left half of the samples and
// the opponent's from the right half. The closing points of the polygon are
// never candidates, and the halves are disjoint, so the two points differ.
func Place(p *Profile, rng Source) (player, opponent Point, err error) {
	n := len(p.samples)
	if n < MinSamples {
		return Point{}, Point{}, fmt.Errorf("%w: have %d, need %d", ErrInsufficientTerrain, n, MinSamples)
	}

	half := n / 2
	left := p.samples[:half]
	right := p.samples[half:]

	player = left[rng.Intn(len(left))]
	opponent = right[rng.Intn(len(right))]
	return player, opponent, nil
}
