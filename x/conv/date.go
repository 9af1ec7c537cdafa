package conv

const months = "JanFebMarAprMayJunJulAugSepOctNovDec"

// MonthAbbrev returns the three letter English abbreviation for month 1..12,
// or "???" when out of range.
func MonthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return "???"
	}
	i := (month - 1) * 3
	return months[i : i+3]
}

// AppendDate appends "D Mon YYYY" (day without padding).
func AppendDate(dst []byte, day, month, year int) []byte {
	dst = AppendInt(dst, day)
	dst = append(dst, ' ')
	dst = append(dst, MonthAbbrev(month)...)
	dst = append(dst, ' ')
	return AppendInt(dst, year)
}
