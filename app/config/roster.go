package config

// defaultRoster lists the flats billed each month, as their owners write
// them. The parsing engine canonicalizes these; they stay in the owners'
// spelling, ordinal markers and all.
func defaultRoster() []string {
	return []string{
		// Aribau
		"Aribau 1º 1ª",
		"Aribau 1º 2ª",
		"Aribau 2º 1º",
		"Aribau 2º 2º",
		"Aribau 2º 3ª",
		"Aribau 126-128 3-1",
		"Aribau 3º 2ª",
		"Aribau 4º 1ª",
		"Aribau 4º 1ª B",
		"Aribau 4º 2ª",

		// Bisbe Laguarda
		"Bisbe Laguarda 14, Pral-2",
		"Bisbe Laguarda 14, 2-2",

		// Blasco de Garay
		"Blasco de Garay Pral 1ª",
		"Blasco de Garay Pral 2ª",
		"Blasco de Garay 1º 1ª",
		"Blasco de Garay 1º-2",
		"Blasco de Garay 2º 1ª",
		"Blasco de Garay 2º 2ª",
		"Blasco de Garay 3º 1ª",
		"Blasco de Garay 3º 2ª",
		"Blasco de Garay 4º 1ª",
		"Blasco de Garay 5º 1ª",

		// Comte Borrell
		"Comte Borrell Pral 1ª",
		"Comte Borrell 5º 1ª",
		"Comte Borrell 5º 2ª",

		// Llull 250
		"Llull 250 Pral 3",
		"Llull 250 Pral 5",
		"Llull 250 1-1",
		"Llull 250 1-3",
		"Llull 250 1-4",
		"Llull 250 1-5",
		"Llull 250 1-6",
		"Llull 250 2-3",
		"Llull 250 2-5",
		"Llull 250 2-6",
		"Llull 250 3-2",
		"Llull 250 3-4",
		"Llull 250 3-5",
		"Llull 250 3-6",
		"Llull 250 4-3",
		"Llull 250 4-5",
		"Llull 250 5-1",
		"Llull 250 5-2",
		"Llull 250 5-3",
		"Llull 250 5-4",
		"Llull 250 5-5",

		// Padilla
		"Padilla Entl 1ª",
		"Padilla Entl 2ª",
		"Padilla Entl 4ª",
		"Padilla Pral 2ª",
		"Padilla Pral 3ª",
		"Padilla 1º 1ª",
		"Padilla 1º 2ª",
		"Padilla 1º 3ª",
		"Padilla 2º 1ª",
		"Padilla 2-2",
		"Padilla 2º 3ª",
		"Padilla 2-4",
		"Padilla 3º 2ª",
		"Padilla 3º 3ª",
		"Padilla 4º 2ª",
		"Padilla 4º 3ª",
		"Padilla 5º 1ª",
		"Padilla 5º 2ª",

		// Passeig de Sant Joan
		"Psg Sant Joan Entl 1ª",
		"Psg Sant Joan Entl 2ª",
		"Psg Sant Joan Pral 1ª",
		"Psg Sant Joan Pral 2ª",
		"Psg Sant Joan 1º 1ª",
		"Pg Sant Joan 161 2-1",
		"Pg Sant Joan 161 2-2",
		"Psg Sant Joan 3º 2ª",
		"Pg Sant Joan 4-1",
		"Psg Sant Joan 4º 2ª",
		"Psg Sant Joan 5º 2ª",

		// Providencia
		"Providencia Bajs 2ª",
		"Providencia Pral 2ª",
		"Providencia 1º 1ª",
		"Providencia 1º 2ª",
		"Providencia 2º 1ª",
		"Providencia 2º 2ª",
		"Providencia 3º 2ª",
		"Providencia 4º 2ª",

		// Sardenya
		"Sardenya 1º 2ª",
		"Sardenya 3º 2ª",
		"Sardenya 4º 2ª",
		"Sardenya 5º 2ª",
		"Sardenya Pral",

		// Torrent de l'Olla
		"Torrent Olla Pral 1ª",
		"Torrent Olla 1º 1ª",
		"Torrent Olla 1º 2ª",
		"Torrent Olla 2º 1ª",
		"Torrent Olla 2º 2ª",
		"Torrent Olla 3º 2ª",
		"Torrent Olla Ático",

		// Valencia
		"Valencia Pral 1ª",
		"Valencia 2º 1ª",
	}
}

// defaultRooms maps each flat to its room count for allowance lookup. Keys
// are the address strings as they appear in the provider export; the lookup
// is exact-match and independent of the parsing engine.
func defaultRooms() map[string]int {
	return map[string]int{
		"Aribau 1º 1ª":       1,
		"Aribau 1º 2ª":       1,
		"Aribau 2º 1º":       1,
		"Aribau 2º 2º":       3,
		"Aribau 2º 3ª":       1,
		"Aribau 126-128 3-1": 3,
		"Aribau 3º 2ª":       3,
		"Aribau 4º 1ª":       3,
		"Aribau 4º 1ª B":     2,
		"Aribau 4º 2ª":       3,
		"Aribau Escalera":    1,

		"Bisbe Laguarda 14, Pral-2": 3,
		"Bisbe Laguarda 14, 2-2":    3,

		"Blasco de Garay Pral 1ª": 3,
		"Blasco de Garay Pral 2ª": 3,
		"Blasco de Garay 1º 1ª":   3,
		"Blasco de Garay 1º-2":    2,
		"Blasco de Garay 2º 1ª":   3,
		"Blasco de Garay 2º 2ª":   3,
		"Blasco de Garay 3º 1ª":   3,
		"Blasco de Garay 3º 2ª":   3,
		"Blasco de Garay 4º 1ª":   3,
		"Blasco de Garay 5º 1ª":   1,

		"Comte Borrell Pral 1ª": 3,
		"Comte Borrell 5º 1ª":   1,
		"Comte Borrell 5º 2ª":   1,

		"Llull 250 Pral 3": 2,
		"Llull 250 Pral 5": 2,
		"Llull 250 1-1":    2,
		"Llull 250 1-3":    2,
		"Llull 250 1-4":    2,
		"Llull 250 1-5":    2,
		"Llull 250 1-6":    2,
		"Llull 250 2-3":    2,
		"Llull 250 2-5":    2,
		"Llull 250 2-6":    2,
		"Llull 250 3-2":    2,
		"Llull 250 3-4":    2,
		"Llull 250 3-5":    2,
		"Llull 250 3-6":    2,
		"Llull 250 4-3":    2,
		"Llull 250 4-5":    2,
		"Llull 250 5-1":    2,
		"Llull 250 5-2":    2,
		"Llull 250 5-3":    2,
		"Llull 250 5-4":    2,
		"Llull 250 5-5":    2,

		"Padilla 1º 1ª":  3,
		"Padilla 1º 2ª":  3,
		"Padilla 1º 3ª":  3,
		"Padilla Entl 1ª": 1,
		"Padilla Entl 2ª": 1,
		"Padilla Entl 4ª": 1,
		"Padilla Pral 2ª": 1,
		"Padilla Pral 3ª": 1,
		"Padilla 2º 1ª":  1,
		"Padilla 2-2":    1,
		"Padilla 2º 3ª":  1,
		"Padilla 2-4":    1,
		"Padilla 3º 2ª":  1,
		"Padilla 3º 3ª":  1,
		"Padilla 4º 2ª":  1,
		"Padilla 4º 3ª":  1,
		"Padilla 5º 1ª":  1,
		"Padilla 5º 2ª":  1,

		"Psg Sant Joan Entl 1ª": 1,
		"Psg Sant Joan Entl 2ª": 1,
		"Psg Sant Joan Pral 1ª": 1,
		"Psg Sant Joan Pral 2ª": 1,
		"Psg Sant Joan 1º 1ª":   1,
		"Pg Sant Joan 161 2-1":  1,
		"Pg Sant Joan 161 2-2":  1,
		"Psg Sant Joan 3º 2ª":   1,
		"Pg Sant Joan 4-1":      1,
		"Psg Sant Joan 4º 2ª":   1,
		"Psg Sant Joan 5º 2ª":   1,

		"Providencia Bajs 2ª": 2,
		"Providencia Pral 2ª": 2,
		"Providencia 1º 1ª":   1,
		"Providencia 1º 2ª":   1,
		"Providencia 2º 1ª":   1,
		"Providencia 2º 2ª":   1,
		"Providencia 3º 2ª":   1,
		"Providencia 4º 2ª":   1,

		"Sardenya 1º 2ª": 2,
		"Sardenya 3º 2ª": 2,
		"Sardenya 4º 2ª": 2,
		"Sardenya 5º 2ª": 2,
		"Sardenya Pral":  1,

		"Torrent Olla Pral 1ª": 1,
		"Torrent Olla 1º 1ª":   1,
		"Torrent Olla 1º 2ª":   1,
		"Torrent Olla 2º 1ª":   1,
		"Torrent Olla 2º 2ª":   1,
		"Torrent Olla 3º 2ª":   1,
		"Torrent Olla Ático":   1,

		"Valencia Pral 1ª": 1,
		"Valencia 2º 1ª":   1,
	}
}
