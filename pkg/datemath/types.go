package datemath

// Day names accepted by LookupWeekday, longest first so regex alternations prefer whole words.
const WeekdayPattern = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|thurs|thur|tues|mon|tue|wed|thu|fri|sat|sun`

// Month names accepted by LookupMonth, longest first.
const MonthPattern = `january|february|march|april|may|june|july|august|september|october|november|december|sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`
