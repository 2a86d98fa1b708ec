package resumesrv

// promptTemplate is the fixed instruction block sent to the model. The
// schema text is a contract with the model: field names and types must
// stay in sync with resume.Record, and unknown fields must come back as
// null rather than fabricated values.
const promptTemplate = `You are an expert resume parser. Extract the following information from the resume and respond ONLY with valid JSON, no markdown formatting:

{
  "name": "Full name",
  "phone": "Phone number or null if not found",
  "email": "Email address or null if not found",
  "position": "Current or most recent job position/title or null if not found",
  "summary": "Brief professional summary (2-3 sentences) or null",
  "primarySkills": ["List of 5-8 core technical skills"],
  "secondarySkills": ["List of additional supporting skills"],
  "experience": "Years of professional experience or null",
  "education": "Highest education qualification or null",
  "skillsSource": "Brief explanation of how skills were determined"
}

Instructions:
1. Extract name, phone, email, and position directly from the resume
2. Identify primary skills as core technical competencies mentioned most frequently
3. Identify secondary skills as supporting technologies and tools
4. If skills aren't explicitly listed, infer from projects, work experience, and education
5. Return ONLY valid JSON with no markdown backticks, no preamble, no explanation
6. Use null for any field that cannot be determined
7. Ensure all arrays and strings are properly quoted

Resume:
`

// buildPrompt renders the resume text into the instruction template.
func buildPrompt(resumeText string) string {
	return promptTemplate + resumeText
}
