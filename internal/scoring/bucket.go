package scoring

// Bucket classifies a hole score relative to par.
type Bucket int

const (
	// EagleOrBetter covers every score two or more strokes under par, albatrosses included.
	EagleOrBetter Bucket = iota
	Birdie
	Par
	Bogey
	DoubleBogey
	TripleBogey
	Worse
)

var bucketNames = [...]string{
	EagleOrBetter: "eagle_or_better",
	Birdie:        "birdie",
	Par:           "par",
	Bogey:         "bogey",
	DoubleBogey:   "double_bogey",
	TripleBogey:   "triple_bogey",
	Worse:         "worse",
}

func (b Bucket) String() string {
	if b < EagleOrBetter || b > Worse {
		return "unknown"
	}
	return bucketNames[b]
}

// ClassifyScoreToPar buckets score by its integer difference from par.
func ClassifyScoreToPar(par, score int) Bucket {
	switch diff := score - par; {
	case diff <= -2:
		return EagleOrBetter
	case diff == -1:
		return Birdie
	case diff == 0:
		return Par
	case diff == 1:
		return Bogey
	case diff == 2:
		return DoubleBogey
	case diff == 3:
		return TripleBogey
	default:
		return Worse
	}
}

// Distribution is a histogram of hole scores by bucket.
type Distribution struct {
	Eagles     int `json:"eagles"`
	Birdies    int `json:"birdies"`
	Pars       int `json:"pars"`
	Bogeys     int `json:"bogeys"`
	DblBogeys  int `json:"dbl_bogeys"`
	TripBogeys int `json:"trip_bogeys"`
	Worse      int `json:"worse"`
}

// Add counts one hole played to par for score.
func (d *Distribution) Add(par, score int) {
	d.AddBucket(ClassifyScoreToPar(par, score))
}

func (d *Distribution) AddBucket(b Bucket) {
	switch b {
	case EagleOrBetter:
		d.Eagles++
	case Birdie:
		d.Birdies++
	case Par:
		d.Pars++
	case Bogey:
		d.Bogeys++
	case DoubleBogey:
		d.DblBogeys++
	case TripleBogey:
		d.TripBogeys++
	case Worse:
		d.Worse++
	}
}

// Merge adds every count of o into d.
func (d *Distribution) Merge(o Distribution) {
	d.Eagles += o.Eagles
	d.Birdies += o.Birdies
	d.Pars += o.Pars
	d.Bogeys += o.Bogeys
	d.DblBogeys += o.DblBogeys
	d.TripBogeys += o.TripBogeys
	d.Worse += o.Worse
}

// Total is the number of holes counted.
func (d Distribution) Total() int {
	return d.Eagles + d.Birdies + d.Pars + d.Bogeys + d.DblBogeys + d.TripBogeys + d.Worse
}

// ParOrBetter is the number of holes at or under par.
func (d Distribution) ParOrBetter() int {
	return d.Eagles + d.Birdies + d.Pars
}
