package user

// SampleWithRequiredData returns a User with only mandatory fields set.
func SampleWithRequiredData() User {
	return User{ID: 6303, Login: "QtT"}
}

// SampleWithPartialData returns a User with some fields set.
func SampleWithPartialData() User {
	return User{ID: 20081, Login: "KS-Ta"}
}

// SampleWithFullData returns a User with every field set.
func SampleWithFullData() User {
	return User{ID: 9366, Login: "D2WmC"}
}
