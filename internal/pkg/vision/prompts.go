package vision

const extractPrompt = `Please analyze this employee schedule image and return a JSON object with the following structure:
{
    "employee_name": "string",
    "schedule": [
        {
            "day": "string",
            "location": "string",
            "start": "string",
            "end": "string"
        }
    ]
}
Extract the exact times as shown in the image without modifying the format.`

const analyzePromptFormat = `Given this schedule data:
%s

Please analyze the schedule and provide:
1. Calculate the total hours worked for the week
2. Write a brief summary of the schedule

Return your response as a JSON object with this structure:
{
    "total_hours": number,
    "summary": "string describing the schedule"
}`
