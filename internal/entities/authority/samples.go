package authority

// Sample values are returned by value so callers can never alter them.

// SampleWithRequiredData returns an Authority with only mandatory fields set.
func SampleWithRequiredData() Authority {
	return Authority{Name: "a0840ef6-4b2d-4c75-bb76-f8e68982c052"}
}

// SampleWithPartialData returns an Authority with some fields set.
func SampleWithPartialData() Authority {
	return Authority{Name: "9a3bd5c1-da3b-45a2-8c78-40c581880941"}
}

// SampleWithFullData returns an Authority with every field set.
func SampleWithFullData() Authority {
	return Authority{Name: "238594f1-de11-472e-a409-d21437757b70"}
}

// SampleWithNewData returns the creation-form template with no identity.
func SampleWithNewData() NewAuthority {
	return NewAuthority{Name: nil}
}
