package naming

// BuildTargetName constructs the final output filename. The separator is
// always exactly " - " regardless of any spacing in the inputs; this is the
// only place hyphen spacing is normalized.
func BuildTargetName(datePrefix, title, ext string) string {
	return datePrefix + " - " + title + ext
}
