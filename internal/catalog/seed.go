package catalog

// Linear algebra curriculum tables. Sub-level ids 218-224 are the per-chapter
// Python lab sessions appended after the original numbering.

var topLevels = []TopLevel{
	{ID: 171, Label: "선형방정식"},
	{ID: 175, Label: "행렬"},
	{ID: 180, Label: "역행렬"},
	{ID: 185, Label: "행렬식"},
	{ID: 191, Label: "벡터"},
	{ID: 198, Label: "선형변환"},
	{ID: 201, Label: "고유값과 고유벡터"},
	{ID: 205, Label: "직교성"},
	{ID: 210, Label: "대각화와 대칭"},
	{ID: 215, Label: "특이값 분해"},
}

var subLevels = map[int][]SubLevel{
	171: {
		{ID: 172, Label: "연립선형방정식"},
		{ID: 173, Label: "연립선형방정식의 풀이법"},
		{ID: 174, Label: "연립선형방정식의 응용"},
		{ID: 218, Label: "파이썬 실습"},
	},
	175: {
		{ID: 176, Label: "행렬"},
		{ID: 177, Label: "행렬의 연산"},
		{ID: 178, Label: "역행렬"},
		{ID: 179, Label: "특별한 행렬"},
		{ID: 219, Label: "파이썬 실습"},
	},
	180: {
		{ID: 181, Label: "역행렬의 계산"},
		{ID: 182, Label: "역행렬의 활용"},
		{ID: 183, Label: "LU 분해"},
		{ID: 184, Label: "블록행렬의 역행렬"},
		{ID: 220, Label: "파이썬 실습"},
	},
	185: {
		{ID: 186, Label: "행렬식"},
		{ID: 187, Label: "행렬식의 성질"},
		{ID: 188, Label: "블록행렬의 행렬식"},
		{ID: 189, Label: "행렬식의 기하학적 의미"},
		{ID: 190, Label: "행렬식의 활용"},
		{ID: 221, Label: "파이썬 실습"},
	},
	191: {
		{ID: 192, Label: "벡터"},
		{ID: 193, Label: "벡터공간"},
		{ID: 194, Label: "벡터의 내적"},
		{ID: 195, Label: "벡터의 외적"},
		{ID: 196, Label: "벡터와 기하학"},
		{ID: 197, Label: "벡터의 행렬 미분"},
		{ID: 222, Label: "파이썬 실습"},
	},
	198: {
		{ID: 199, Label: "선형변환"},
		{ID: 200, Label: "선형변환의 부분공간과 계수"},
		{ID: 223, Label: "파이썬 실습"},
	},
	201: {
		{ID: 202, Label: "고유값과 고유벡터"},
		{ID: 203, Label: "고유값과 고유벡터의 성질"},
		{ID: 204, Label: "고유값과 고유벡터의 응용"},
		{ID: 224, Label: "파이썬 실습"},
	},
	205: {
		{ID: 206, Label: "직교기저"},
		{ID: 207, Label: "직교분해"},
		{ID: 208, Label: "행렬방정식의 최소제곱해와 최적근사해"},
		{ID: 209, Label: "직교성의 응용"},
	},
	210: {
		{ID: 211, Label: "닮음과 대각화"},
		{ID: 212, Label: "대칭행렬"},
		{ID: 213, Label: "이차형식"},
		{ID: 214, Label: "대칭행렬의 응용"},
	},
	215: {
		{ID: 216, Label: "특잇값 분해"},
		{ID: 217, Label: "특잇값 분해의 응용"},
	},
}

var chapterNumbers = map[int]string{
	171: "2", 172: "2.1", 173: "2.2", 174: "2.3",
	175: "3", 176: "3.1", 177: "3.2", 178: "3.3", 179: "3.4",
	180: "4", 181: "4.1", 182: "4.2", 183: "4.3", 184: "4.4",
	185: "5", 186: "5.1", 187: "5.2", 188: "5.3", 189: "5.4", 190: "5.5",
	191: "6", 192: "6.1", 193: "6.2", 194: "6.3", 195: "6.4", 196: "6.5", 197: "6.6",
	198: "7", 199: "7.1", 200: "7.2",
	201: "8", 202: "8.1", 203: "8.2", 204: "8.3",
	205: "9", 206: "9.1", 207: "9.2", 208: "9.3", 209: "9.4",
	210: "10", 211: "10.1", 212: "10.2", 213: "10.3", 214: "10.4",
	215: "11", 216: "11.1", 217: "11.2",
	218: "2.4", 219: "3.5", 220: "4.5", 221: "5.6", 222: "6.7", 223: "7.3", 224: "8.4",
}
