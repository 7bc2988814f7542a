package assistant

// Match pairs a keyword with the value returned when it is found. Tables of
// Match are scanned in order and the first hit wins.
type Match struct {
	Keyword string
	Value   string
}

var symptomSpecializations = []Match{
	{"chest pain", "Cardiology"},
	{"heart", "Cardiology"},
	{"blood pressure", "Cardiology"},
	{"skin rash", "Dermatology"},
	{"acne", "Dermatology"},
	{"eczema", "Dermatology"},
	{"fever", "Pediatrics"},
	{"child", "Pediatrics"},
	{"pediatric", "Pediatrics"},
	{"joint pain", "Orthopedics"},
	{"bone", "Orthopedics"},
	{"fracture", "Orthopedics"},
	{"menstrual", "Gynecology"},
	{"period", "Gynecology"},
	{"pregnancy", "Gynecology"},
	{"headache", "Neurology"},
	{"migraine", "Neurology"},
	{"seizure", "Neurology"},
	{"anxiety", "Psychiatry"},
	{"depression", "Psychiatry"},
	{"mental health", "Psychiatry"},
	{"weight", "Endocrinology"},
	{"diabetes", "Endocrinology"},
	{"thyroid", "Endocrinology"},
	{"hormone", "Endocrinology"},
}

var chatReplies = []Match{
	{"hello", "Hello! How can I assist you with your health concerns today?"},
	{"hi", "Hi there! I'm here to help with your medical questions."},
	{"appointment", "You can schedule an appointment by going to the Appointments section and selecting a doctor."},
	{"book appointment", "To book an appointment, visit the Appointments page and choose your preferred doctor and time slot."},
	{"symptoms", "If you're experiencing symptoms, I can help recommend a specialist. Please describe your symptoms in detail."},
	{"pain", "I'm sorry to hear you're in pain. Can you describe the location and type of pain? For serious pain, please seek immediate medical attention."},
	{"fever", "Fever can be a sign of infection. Please monitor your temperature and consult a doctor if it persists for more than 48 hours or is very high."},
	{"headache", "Headaches can have various causes. If it's severe or persistent, I recommend consulting with Dr. James Wilson (Neurology)."},
	{"records", "You can view your medical records in the Medical Records section of your dashboard."},
	{"medical records", "Your medical history is available in the Medical Records section. You can also add new records there."},
	{"prescription", "For prescription refills, please contact your doctor directly or schedule an appointment."},
	{"medicine", "Please consult with your doctor for medication-related questions. Never self-medicate without professional advice."},
	{"emergency", "If this is a medical emergency, please call emergency services immediately or go to the nearest hospital."},
	{"help", "I can help you with: booking appointments, finding doctors based on symptoms, accessing medical records, and answering general health questions."},
	{"thank", "You're welcome! Is there anything else I can help you with?"},
	{"bye", "Goodbye! Take care of your health and don't hesitate to reach out if you need assistance."},
}

// topicGroup is checked only when no chat keyword matched.
type topicGroup struct {
	words []string
	reply string
}

var chatTopics = []topicGroup{
	{
		words: []string{"doctor", "specialist", "expert"},
		reply: "I can help you find the right specialist based on your symptoms. Try using our AI doctor recommendation feature in the Appointments section.",
	},
	{
		words: []string{"period", "menstrual", "cycle"},
		reply: "For menstrual cycle tracking and related concerns, please use our Period Tracker feature or consult with Dr. Lisa Patel (Gynecology).",
	},
	{
		words: []string{"test", "lab", "result"},
		reply: "You can view your lab test results in the Medical Records section. For new tests, please schedule an appointment with your doctor.",
	},
}

const chatFallback = "I'm here to help with your health questions. You can ask me about appointments, symptoms, medical records, or general health concerns."

var healthTips = []string{
	"Stay hydrated by drinking at least 8 glasses of water daily.",
	"Aim for 7-9 hours of quality sleep each night.",
	"Include at least 30 minutes of physical activity in your daily routine.",
	"Eat a balanced diet rich in fruits, vegetables, and whole grains.",
	"Practice stress-reduction techniques like meditation or deep breathing.",
	"Don't skip regular health check-ups and preventive screenings.",
	"Wash your hands frequently to prevent the spread of germs.",
	"Limit processed foods and added sugars in your diet.",
	"Wear sunscreen daily to protect your skin from UV damage.",
	"Take regular breaks from screens to protect your eye health.",
}
