package vlm

// systemPrompt sets the model's role: recognize text and math from the image
// and produce HTML with LaTeX-escaped formulas, in both Korean and English.
const systemPrompt = "너는 이미지에서 텍스트와 수식을 인식하고 번역하는 전문 AI야. " +
	"주어진 이미지를 분석하고, 모든 수학 수식은 LaTeX 형식으로 올바르게 변환하여 " +
	"HTML 형식으로 결과를 생성해줘. 한국어와 영어 두 버전을 모두 제공해야 한다."

// userInstruction demands a bare JSON object so the lenient parser usually
// gets clean input; the code-fence stripping handles models that wrap it
// anyway.
const userInstruction = `이미지에서 문제를 추출하고, 다음 JSON 형식으로 응답해줘 json을 앞에 붙이지 말고, 문제의 번호는 생략해줘:
{
  "korean": "한국어 HTML 내용",
  "english": "English HTML content"
}

수학 수식은 LaTeX로 변환하고, 내용을 정확히 번역해줘.`
