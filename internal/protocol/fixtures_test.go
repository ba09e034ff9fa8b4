package protocol

var appstoredTasks = []byte{
	10, 45, 99, 111, 109, 46, 97, 112, 112, 108, 101, 46, 97, 112, 112, 115, 116, 111, 114,
	101, 100, 46, 77, 105, 103, 114, 97, 116, 111, 114, 77, 105, 115, 99, 101, 108, 108, 97,
	110, 101, 111, 117, 115, 84, 97, 115, 107, 10, 40, 99, 111, 109, 46, 97, 112, 112, 108,
	101, 46, 97, 112, 112, 115, 116, 111, 114, 101, 100, 46, 77, 105, 103, 114, 97, 116, 111,
	114, 65, 112, 112, 85, 115, 97, 103, 101, 84, 97, 115, 107, 10, 38, 99, 111, 109, 46,
	97, 112, 112, 108, 101, 46, 97, 112, 112, 115, 116, 111, 114, 101, 100, 46, 77, 105, 103,
	114, 97, 116, 111, 114, 65, 114, 99, 97, 100, 101, 84, 97, 115, 107,
}

var deployFields = []byte{
	10, 10, 112, 114, 111, 100, 117, 99, 116, 105, 111, 110, 18, 32, 99, 52, 52, 101, 49,
	48, 50, 57, 57, 57, 57, 51, 101, 101, 53, 100, 97, 56, 48, 56, 48, 98, 51, 57, 53, 51,
	57, 57, 101, 56, 50, 54,
}

var biomeAgent = []byte{
	10, 15, 55, 53, 48, 48, 53, 54, 55, 57, 57, 54, 48, 56, 53, 57, 56, 16, 240, 249, 7,
	24, 61, 32, 1, 42, 10, 66, 105, 111, 109, 101, 65, 103, 101, 110, 116, 0, 0, 0,
}

var biomeApp = []byte{
	16, 1, 24, 1, 33, 217, 236, 52, 46, 208, 118, 198, 65, 50, 28, 99, 111, 109, 46, 100,
	117, 99, 107, 100, 117, 99, 107, 103, 111, 46, 109, 97, 99, 111, 115, 46, 98, 114, 111,
	119, 115, 101, 114, 74, 7, 49, 46, 49, 49, 52, 46, 48, 82, 3, 51, 48, 56, 88, 1, 96, 1,
	0, 0, 0,
}

var biomeMicrosoft = []byte{
	16, 1, 24, 0, 33, 19, 41, 57, 157, 203, 118, 198, 65, 50, 25, 99, 111, 109, 46, 109,
	105, 99, 114, 111, 115, 111, 102, 116, 46, 97, 117, 116, 111, 117, 112, 100, 97, 116,
	101, 50, 74, 4, 52, 46, 55, 54, 82, 13, 52, 46, 55, 54, 46, 50, 52, 49, 48, 49, 51, 56,
	55, 88, 1, 96, 1, 0, 0, 0,
}

var siriStatus = []byte{
	8, 1, 18, 55, 99, 111, 109, 46, 97, 112, 112, 108, 101, 46, 115, 105, 114, 105, 46,
	109, 101, 116, 114, 105, 99, 115, 46, 77, 101, 116, 114, 105, 99, 115, 69, 120, 116,
	101, 110, 115, 105, 111, 110, 46, 115, 99, 111, 114, 101, 99, 97, 114, 100, 46, 100,
	97, 105, 108, 121, 26, 11, 78, 111, 116, 32, 83, 116, 97, 114, 116, 101, 100,
}

var siriMetrics = []byte{
	8, 1, 17, 0, 0, 0, 128, 76, 206, 217, 65, 25, 0, 0, 0, 32, 155, 208, 217, 65, 34, 55,
	99, 111, 109, 46, 97, 112, 112, 108, 101, 46, 115, 105, 114, 105, 46, 109, 101, 116,
	114, 105, 99, 115, 46, 77, 101, 116, 114, 105, 99, 115, 69, 120, 116, 101, 110, 115,
	105, 111, 110, 46, 115, 99, 111, 114, 101, 99, 97, 114, 100, 46, 100, 97, 105, 108,
	121, 42, 11, 78, 111, 116, 32, 83, 116, 97, 114, 116, 101, 100, 49, 134, 227, 69, 236,
	1, 207, 217, 65, 56, 1, 64, 0, 72, 0, 81, 0, 0, 0, 192, 204, 255, 42, 64, 89, 0, 0, 0,
	0, 0, 0, 240, 191, 97, 0, 0, 0, 192, 204, 255, 42, 64, 105, 0, 0, 0, 0, 0, 0, 240, 191,
	113, 0, 0, 0, 0, 0, 0, 240, 191, 0, 0,
}

// Field numbers 128, 1024 and 32768 use multi-byte tags.
var wideFieldNumbers = []byte{
	0x80, 0x08, 0x01,
	0x85, 0x40, 0xEC, 0xFF, 0xFF, 0xFF,
	0x82, 0x80, 0x10, 19,
	18, 8, 'T', 'e', 's', 't', '1', '2', '3', '4',
	25, 0xCD, 0xCC, 0xCC, 0xCC, 0xCC, 0xCC, 0x00, 0x40,
}
