package main

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "LIFTLINE_SQLITE_URL":
		return ":memory:", true
	case "LIFTLINE_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}
