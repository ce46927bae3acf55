package featureflags

var (
	// HeaderEntropy computes the byte-value distribution and Shannon
	// entropy of each file's header during basic data collection.
	HeaderEntropy = new("HeaderEntropy", true)

	// SizeBenfordCheck scores the sizes of all scanned files against the
	// Benford first-digit distribution and reports the deviation in the
	// tree summary. Synthetic or padded trees tend to score high.
	SizeBenfordCheck = new("SizeBenfordCheck", true)

	// MimeDetection runs library-based MIME type detection on each file
	// during basic data collection.
	MimeDetection = new("MimeDetection", true)
)
