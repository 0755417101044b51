package dedupe

// Detector walks the input in a single forward pass, keeping a canonical
// map from text value to the id of the first item recorded under it. The
// map starts empty — it is never pre-seeded from the index — so an item can
// only ever be marked a duplicate of an item processed earlier.
type Detector struct {
	index     *Index
	threshold float64
	canonical map[string]int
}

// NewDetector pairs a prebuilt index with a similarity threshold in [0,1]
func NewDetector(index *Index, threshold float64) *Detector {
	return &Detector{
		index:     index,
		threshold: threshold,
		canonical: make(map[string]int),
	}
}

// Check records item id with subject text and reports whether it duplicates
// an earlier item. When it does, the returned id is the canonical
// occurrence, always strictly earlier in the pass.
func (d *Detector) Check(id int, text string) (duplicateOf int, isDuplicate bool) {
	match, ok := d.index.BestMatch(text)
	if !ok || match.Similarity < d.threshold {
		return 0, false
	}

	if canonicalID, seen := d.canonical[match.Text]; seen && canonicalID != id {
		// An earlier item already owns this text: this one is the duplicate.
		// It does not register a canonical entry of its own.
		return canonicalID, true
	}

	d.canonical[text] = id
	return 0, false
}
