package matching

// vocabulary maps folded skill keywords to their display names. JD keyword
// extraction recognizes these terms plus whatever the candidate's ledger
// contains. Multi-word entries are matched as substrings of the folded JD.
var vocabulary = map[string]string{
	// Languages
	"python":     "Python",
	"go":         "Go",
	"golang":     "Go",
	"java":       "Java",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"c++":        "C++",
	"c#":         "C#",
	"rust":       "Rust",
	"ruby":       "Ruby",
	"php":        "PHP",
	"kotlin":     "Kotlin",
	"swift":      "Swift",
	"scala":      "Scala",
	"r":          "R",
	"sql":        "SQL",
	"bash":       "Bash",

	// Frameworks and runtimes
	"react":   "React",
	"reactjs": "React",
	"vue":     "Vue",
	"vuejs":   "Vue",
	"angular": "Angular",
	"nodejs":  "Node.js",
	"node":    "Node.js",
	"django":  "Django",
	"flask":   "Flask",
	"fastapi": "FastAPI",
	"spring":  "Spring",
	"rails":   "Rails",
	"nextjs":  "Next.js",
	"express": "Express",

	// Data stores
	"postgresql":    "PostgreSQL",
	"postgres":      "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"mongo":         "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",
	"cassandra":     "Cassandra",
	"dynamodb":      "DynamoDB",
	"sqlite":        "SQLite",
	"kafka":         "Kafka",
	"rabbitmq":      "RabbitMQ",

	// Infrastructure
	"kubernetes": "Kubernetes",
	"k8s":        "Kubernetes",
	"docker":     "Docker",
	"terraform":  "Terraform",
	"ansible":    "Ansible",
	"jenkins":    "Jenkins",
	"aws":        "AWS",
	"gcp":        "GCP",
	"azure":      "Azure",
	"linux":      "Linux",
	"git":        "Git",
	"grpc":       "gRPC",
	"graphql":    "GraphQL",
	"rest":       "REST",
	"cicd":       "CI/CD",
	"ci/cd":      "CI/CD",
	"helm":       "Helm",
	"prometheus": "Prometheus",
	"grafana":    "Grafana",
	"nginx":      "Nginx",

	// Data, ML and architecture terms. Multi-word entries are matched as
	// substrings of the folded JD; single words as whole tokens.
	"machine learning":            "Machine Learning",
	"deep learning":               "Deep Learning",
	"data science":                "Data Science",
	"natural language processing": "Natural Language Processing",
	"computer vision":             "Computer Vision",
	"amazon web services":         "AWS",
	"google cloud platform":       "GCP",
	"distributed systems":         "Distributed Systems",
	"microservices":               "Microservices",
	"devops":                      "DevOps",
	"etl":                         "ETL",
	"spark":                       "Spark",
	"hadoop":                      "Hadoop",
	"tensorflow":                  "TensorFlow",
	"pytorch":                     "PyTorch",
	"pandas":                      "Pandas",
	"numpy":                       "NumPy",
}
