package catalog

// defaultEntries is the built-in venue table used when no dataset file is
// configured. Ranks follow the curated catalog the tool ships with; custom
// datasets override the whole table, never merge with it.
var defaultEntries = []Entry{
	// AI & machine learning
	{Name: "Conference on Neural Information Processing Systems", Abbr: "NeurIPS", Rank: RankA, Kind: KindConference, Category: "Machine Learning",
		Aliases: []string{"NIPS", "Advances in Neural Information Processing Systems"}},
	{Name: "International Conference on Machine Learning", Abbr: "ICML", Rank: RankA, Kind: KindConference, Category: "Machine Learning"},
	{Name: "International Conference on Learning Representations", Abbr: "ICLR", Rank: RankA, Kind: KindConference, Category: "Machine Learning"},
	{Name: "AAAI Conference on Artificial Intelligence", Abbr: "AAAI", Rank: RankA, Kind: KindConference, Category: "Artificial Intelligence"},
	{Name: "International Joint Conference on Artificial Intelligence", Abbr: "IJCAI", Rank: RankA, Kind: KindConference, Category: "Artificial Intelligence"},
	{Name: "International Conference on Autonomous Agents and Multiagent Systems", Abbr: "AAMAS", Rank: RankB, Kind: KindConference, Category: "Artificial Intelligence"},
	{Name: "Journal of Machine Learning Research", Abbr: "JMLR", Rank: RankA, Kind: KindJournal, Category: "Machine Learning"},

	// Computer vision
	{Name: "IEEE/CVF Conference on Computer Vision and Pattern Recognition", Abbr: "CVPR", Rank: RankA, Kind: KindConference, Category: "Computer Vision",
		Aliases: []string{"Computer Vision and Pattern Recognition"}},
	{Name: "IEEE/CVF International Conference on Computer Vision", Abbr: "ICCV", Rank: RankA, Kind: KindConference, Category: "Computer Vision"},
	{Name: "European Conference on Computer Vision", Abbr: "ECCV", Rank: RankA, Kind: KindConference, Category: "Computer Vision"},
	{Name: "British Machine Vision Conference", Abbr: "BMVC", Rank: RankB, Kind: KindConference, Category: "Computer Vision"},
	{Name: "IEEE Winter Conference on Applications of Computer Vision", Abbr: "WACV", Rank: RankB, Kind: KindConference, Category: "Computer Vision"},
	{Name: "IEEE Transactions on Pattern Analysis and Machine Intelligence", Abbr: "TPAMI", Rank: RankA, Kind: KindJournal, Category: "Computer Vision"},
	{Name: "International Journal of Computer Vision", Abbr: "IJCV", Rank: RankA, Kind: KindJournal, Category: "Computer Vision"},

	// Natural language processing
	{Name: "Annual Meeting of the Association for Computational Linguistics", Abbr: "ACL", Rank: RankA, Kind: KindConference, Category: "Natural Language Processing"},
	{Name: "Conference on Empirical Methods in Natural Language Processing", Abbr: "EMNLP", Rank: RankA, Kind: KindConference, Category: "Natural Language Processing"},
	{Name: "Conference of the North American Chapter of the Association for Computational Linguistics", Abbr: "NAACL", Rank: RankA, Kind: KindConference, Category: "Natural Language Processing",
		Aliases: []string{"NAACL-HLT"}},
	{Name: "International Conference on Computational Linguistics", Abbr: "COLING", Rank: RankB, Kind: KindConference, Category: "Natural Language Processing"},
	{Name: "Transactions of the Association for Computational Linguistics", Abbr: "TACL", Rank: RankA, Kind: KindJournal, Category: "Natural Language Processing"},

	// Data management and mining
	{Name: "ACM SIGKDD Conference on Knowledge Discovery and Data Mining", Abbr: "KDD", Rank: RankA, Kind: KindConference, Category: "Data Mining",
		Aliases: []string{"SIGKDD"}},
	{Name: "ACM SIGMOD International Conference on Management of Data", Abbr: "SIGMOD", Rank: RankA, Kind: KindConference, Category: "Databases"},
	{Name: "International Conference on Very Large Data Bases", Abbr: "VLDB", Rank: RankA, Kind: KindConference, Category: "Databases",
		Aliases: []string{"Proceedings of the VLDB Endowment", "PVLDB"}},
	{Name: "IEEE International Conference on Data Engineering", Abbr: "ICDE", Rank: RankA, Kind: KindConference, Category: "Databases"},
	{Name: "ACM Web Conference", Abbr: "WWW", Rank: RankA, Kind: KindConference, Category: "Web",
		Aliases: []string{"The Web Conference", "International World Wide Web Conference"}},
	{Name: "ACM SIGIR Conference on Research and Development in Information Retrieval", Abbr: "SIGIR", Rank: RankA, Kind: KindConference, Category: "Information Retrieval"},
	{Name: "ACM International Conference on Web Search and Data Mining", Abbr: "WSDM", Rank: RankB, Kind: KindConference, Category: "Data Mining"},
	{Name: "ACM International Conference on Information and Knowledge Management", Abbr: "CIKM", Rank: RankB, Kind: KindConference, Category: "Information Retrieval"},

	// Security
	{Name: "ACM Conference on Computer and Communications Security", Abbr: "CCS", Rank: RankA, Kind: KindConference, Category: "Security",
		Aliases: []string{"ACM SIGSAC Conference on Computer and Communications Security"}},
	{Name: "USENIX Security Symposium", Abbr: "USENIX Security", Rank: RankA, Kind: KindConference, Category: "Security"},
	{Name: "Network and Distributed System Security Symposium", Abbr: "NDSS", Rank: RankA, Kind: KindConference, Category: "Security"},
	{Name: "IEEE Symposium on Security and Privacy", Abbr: "S&P", Rank: RankA, Kind: KindConference, Category: "Security",
		Aliases: []string{"Oakland"}},

	// Systems and networking
	{Name: "USENIX Symposium on Operating Systems Design and Implementation", Abbr: "OSDI", Rank: RankA, Kind: KindConference, Category: "Systems"},
	{Name: "ACM Symposium on Operating Systems Principles", Abbr: "SOSP", Rank: RankA, Kind: KindConference, Category: "Systems"},
	{Name: "USENIX Symposium on Networked Systems Design and Implementation", Abbr: "NSDI", Rank: RankA, Kind: KindConference, Category: "Networking"},
	{Name: "ACM SIGCOMM Conference", Abbr: "SIGCOMM", Rank: RankA, Kind: KindConference, Category: "Networking"},
	{Name: "International Symposium on Computer Architecture", Abbr: "ISCA", Rank: RankA, Kind: KindConference, Category: "Architecture"},
	{Name: "USENIX Annual Technical Conference", Abbr: "USENIX ATC", Rank: RankB, Kind: KindConference, Category: "Systems",
		Aliases: []string{"ATC"}},
	{Name: "European Conference on Computer Systems", Abbr: "EuroSys", Rank: RankA, Kind: KindConference, Category: "Systems"},

	// Software engineering and programming languages
	{Name: "International Conference on Software Engineering", Abbr: "ICSE", Rank: RankA, Kind: KindConference, Category: "Software Engineering"},
	{Name: "ACM SIGSOFT Symposium on the Foundations of Software Engineering", Abbr: "FSE", Rank: RankA, Kind: KindConference, Category: "Software Engineering",
		Aliases: []string{"ESEC/FSE"}},
	{Name: "IEEE/ACM International Conference on Automated Software Engineering", Abbr: "ASE", Rank: RankA, Kind: KindConference, Category: "Software Engineering"},
	{Name: "ACM SIGPLAN Conference on Programming Language Design and Implementation", Abbr: "PLDI", Rank: RankA, Kind: KindConference, Category: "Programming Languages"},
	{Name: "ACM SIGPLAN Symposium on Principles of Programming Languages", Abbr: "POPL", Rank: RankA, Kind: KindConference, Category: "Programming Languages"},

	// Theory
	{Name: "ACM Symposium on Theory of Computing", Abbr: "STOC", Rank: RankA, Kind: KindConference, Category: "Theory"},
	{Name: "IEEE Symposium on Foundations of Computer Science", Abbr: "FOCS", Rank: RankA, Kind: KindConference, Category: "Theory"},
	{Name: "ACM-SIAM Symposium on Discrete Algorithms", Abbr: "SODA", Rank: RankA, Kind: KindConference, Category: "Theory"},

	// HCI, graphics, robotics
	{Name: "ACM CHI Conference on Human Factors in Computing Systems", Abbr: "CHI", Rank: RankA, Kind: KindConference, Category: "Human-Computer Interaction"},
	{Name: "ACM SIGGRAPH Conference", Abbr: "SIGGRAPH", Rank: RankA, Kind: KindConference, Category: "Graphics"},
	{Name: "ACM Transactions on Graphics", Abbr: "TOG", Rank: RankA, Kind: KindJournal, Category: "Graphics"},
	{Name: "IEEE International Conference on Robotics and Automation", Abbr: "ICRA", Rank: RankA, Kind: KindConference, Category: "Robotics"},
	{Name: "IEEE/RSJ International Conference on Intelligent Robots and Systems", Abbr: "IROS", Rank: RankB, Kind: KindConference, Category: "Robotics"},

	// Speech and signal processing
	{Name: "IEEE International Conference on Acoustics, Speech and Signal Processing", Abbr: "ICASSP", Rank: RankB, Kind: KindConference, Category: "Signal Processing"},
	{Name: "Conference of the International Speech Communication Association", Abbr: "INTERSPEECH", Rank: RankB, Kind: KindConference, Category: "Speech"},

	// Bioinformatics
	{Name: "Intelligent Systems for Molecular Biology", Abbr: "ISMB", Rank: RankA, Kind: KindConference, Category: "Bioinformatics"},
	{Name: "Research in Computational Molecular Biology", Abbr: "RECOMB", Rank: RankA, Kind: KindConference, Category: "Bioinformatics"},
	{Name: "Bioinformatics", Abbr: "BIOINF", Rank: RankA, Kind: KindJournal, Category: "Bioinformatics",
		Aliases: []string{"Oxford Bioinformatics"}},
}
