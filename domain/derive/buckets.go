package derive

// Payload buckets for the success-rate-by-payload chart. The first interval
// is closed on both ends, the rest are half-open on the left, so a payload
// sitting exactly on a boundary belongs to the lower bucket.
var (
	bucketEdges  = []float64{0, 2000, 4000, 6000, 8000, 10000}
	bucketLabels = []string{"0-2k", "2k-4k", "4k-6k", "6k-8k", "8k-10k"}
)

// payloadBucket maps a payload mass to its bucket label. Masses outside
// [0, 10000] belong to no bucket.
func payloadBucket(massKg float64) (string, bool) {
	if massKg < bucketEdges[0] || massKg > bucketEdges[len(bucketEdges)-1] {
		return "", false
	}
	for i := 1; i < len(bucketEdges); i++ {
		if massKg <= bucketEdges[i] {
			return bucketLabels[i-1], true
		}
	}
	return "", false
}
