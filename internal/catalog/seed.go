package catalog

// SeedSnapshot returns the built-in catalogs used when no persisted settings
// exist. The lists are starting points only; every entry can be edited or
// replaced wholesale through the store.
func SeedSnapshot() Snapshot {
	return Snapshot{
		LeaveTypes: seedLeaveTypes(),
		Offices:    seedOffices(),
		Holidays:   seedHolidays(),
	}
}

func seedOffices() []ProsecutorOffice {
	return []ProsecutorOffice{
		{ID: "1", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΘΕΣΣΑΛΟΝΙΚΗΣ", Address: "26ης Οκτωβρίου 5", PostalCode: "54627", Phone: "2310507000", Email: "eisaggeleas@thess.gr", City: "ΘΕΣΣΑΛΟΝΙΚΗ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "2", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΠΑΤΡΩΝ", Address: "Γούναρη 30", PostalCode: "26221", Phone: "2610329000", Email: "eisaggeleas@patras.gr", City: "ΠΑΤΡΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "3", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΚΡΗΤΗΣ", Address: "Πλατεία Ελευθερίας", PostalCode: "73134", Phone: "2821045000", Email: "eisaggeleas@crete.gr", City: "ΧΑΝΙΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "4", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΑΘΗΝΩΝ", Address: "Λ. Αλεξάνδρας 132", PostalCode: "11521", Phone: "2106404000", Email: "eisaggeleas@athens.gr", City: "ΑΘΗΝΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "5", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΙΩΑΝΝΙΝΩΝ", Address: "Δικαστικό Μέγαρο", PostalCode: "45110", Phone: "2651020000", Email: "eisaggeleas@ioannina.gr", City: "ΙΩΑΝΝΙΝΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "6", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΑΝΑΤΟΛΙΚΗΣ ΚΡΗΤΗΣ", Address: "Λεωφ. Δικαιοσύνης", PostalCode: "71202", Phone: "2810300000", Email: "eisaggeleas@heraklion.gr", City: "ΗΡΑΚΛΕΙΟ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "7", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΛΑΡΙΣΑΣ", Address: "Κεντρική Πλατεία", PostalCode: "41222", Phone: "2410500000", Email: "eisaggeleas@larissa.gr", City: "ΛΑΡΙΣΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "8", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΠΕΙΡΑΙΩΣ", Address: "Σκουζέ 3-5", PostalCode: "18535", Phone: "2104500000", Email: "eisaggeleas@piraeus.gr", City: "ΠΕΙΡΑΙΑΣ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "9", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΔΩΔΕΚΑΝΗΣΟΥ", Address: "Πλατεία Ελευθερίας", PostalCode: "85100", Phone: "2241020000", Email: "eisaggeleas@rhodes.gr", City: "ΡΟΔΟΣ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "10", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΔΥΤΙΚΗΣ ΜΑΚΕΔΟΝΙΑΣ", Address: "Δημοκρατίας 1", PostalCode: "50100", Phone: "2461020000", Email: "eisaggeleas@kozani.gr", City: "ΚΟΖΑΝΗ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "11", Name: "ΔΙΕΥΘΥΝΣΗ ΔΙΚΑΣΤΙΚΗΣ ΑΣΤΥΝΟΜΙΑΣ", Address: "Μεσογείων 96", PostalCode: "11527", Phone: "2131307633", Email: "dda@justice.gov.gr", City: "ΑΘΗΝΑ", HasProsecutor: false, HeadGender: GenderMale},
		{ID: "12", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΝΑΥΠΛΙΟΥ", Address: "Πλατεία Συντάγματος", PostalCode: "21100", Phone: "2752020000", Email: "eisaggeleas@nafplio.gr", City: "ΝΑΥΠΛΙΟ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "13", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΑΙΓΑΙΟΥ", Address: "Πλατεία Μιαούλη", PostalCode: "84100", Phone: "2281080000", Email: "eisaggeleas@syros.gr", City: "ΕΡΜΟΥΠΟΛΗ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "14", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΘΡΑΚΗΣ", Address: "Χαριλάου Τρικούπη 1", PostalCode: "69100", Phone: "2531020000", Email: "eisaggeleas@komotini.gr", City: "ΚΟΜΟΤΗΝΗ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "15", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΕΥΒΟΙΑΣ", Address: "Ελ. Βενιζέλου 1", PostalCode: "34100", Phone: "2221020000", Email: "eisaggeleas@chalkida.gr", City: "ΧΑΛΚΙΔΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "16", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΚΕΡΚΥΡΑΣ", Address: "Κολοκοτρώνη 1", PostalCode: "49100", Phone: "2661030000", Email: "eisaggeleas@corfu.gr", City: "ΚΕΡΚΥΡΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "17", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΔΥΤΙΚΗΣ ΣΤΕΡΕΑΣ ΕΛΛΑΔΑΣ", Address: "Πολυτεχνείου 1", PostalCode: "30100", Phone: "2641020000", Email: "eisaggeleas@agrinio.gr", City: "ΑΓΡΙΝΙΟ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "18", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΚΑΛΑΜΑΤΑΣ", Address: "Ψαρών 1", PostalCode: "24100", Phone: "2721020000", Email: "eisaggeleas@kalamata.gr", City: "ΚΑΛΑΜΑΤΑ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "19", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΒΟΡΕΙΟΥ ΑΙΓΑΙΟΥ", Address: "Κουντουριώτη 1", PostalCode: "81100", Phone: "2251020000", Email: "eisaggeleas@mytilene.gr", City: "ΜΥΤΙΛΗΝΗ", HasProsecutor: true, HeadGender: GenderMale},
		{ID: "20", Name: "ΕΙΣΑΓΓΕΛΙΑ ΕΦΕΤΩΝ ΛΑΜΙΑΣ", Address: "Υψηλάντου 1", PostalCode: "35100", Phone: "2231020000", Email: "eisaggeleas@lamia.gr", City: "ΛΑΜΙΑ", HasProsecutor: true, HeadGender: GenderMale},
	}
}

func seedLeaveTypes() []LeaveType {
	return []LeaveType{
		{ID: "A1", Label: "Κανονική άδεια", Code: "αρ. 49 του ν. 3528/2007", Group: GroupA, GroupIndex: 1},
		{ID: "A2", Label: "Ειδική άδεια αιμοληψίας", Code: "αρ. 50 παρ. 5 του ν. 3528/2007", Group: GroupA, GroupIndex: 2},
		{ID: "A3", Label: "Προσαύξηση κανονικής άδειας (παραμεθόριος)", Code: "αρ. 48 παρ. 3 του ν. 3528/2007", Group: GroupA, GroupIndex: 3},
		{ID: "A4", Label: "Αδυναμία προσέλευσης (δυσμενείς καιρικές συνθήκες)", Code: "αρ. 50 παρ. 11 του ν. 3528/2007", Group: GroupA, GroupIndex: 4},
		{ID: "A5", Label: "Παρακολούθηση σχολικής επίδοσης τέκνων", Code: "αρ. 53 παρ. 6 του ν. 3528/2007", Group: GroupA, GroupIndex: 5},
		{ID: "A6", Label: "Ασθένεια τέκνων", Code: "αρ. 53 παρ. 8 του ν. 3528/2007", Group: GroupA, GroupIndex: 6},
		{ID: "A7", Label: "Βραχυχρόνια αναρρωτική (έως 8 ημέρες)", Code: "αρ. 55 παρ. 2 του ν. 3528/2007", Group: GroupA, GroupIndex: 7,
			RequiredDocuments: []string{"Ιατρική γνωμάτευση ή υπεύθυνη δήλωση"}},
		{ID: "A8", Label: "Επιμορφωτική/Επιστημονική άδεια", Code: "αρ. 59 του ν. 3528/2007", Group: GroupA, GroupIndex: 8,
			RequiredDocuments: []string{"Βεβαίωση φορέα επιμόρφωσης"}},
		{ID: "A9", Label: "Φοιτητική άδεια (εξετάσεις)", Code: "αρ. 60 του ν. 3528/2007", Group: GroupA, GroupIndex: 9,
			RequiredDocuments: []string{"Βεβαίωση σπουδών", "Πρόγραμμα εξεταστικής περιόδου"}},
		{ID: "A10", Label: "Παρουσία σε δίκη", Code: "αρ. 50 παρ. 1 του ν. 3528/2007", Group: GroupA, GroupIndex: 10,
			RequiredDocuments: []string{"Κλήση ή αποδεικτικό δικασίμου"}},
		{ID: "B1", Label: "Γάμος / Θάνατος / Εκλογές / Πατρότητα", Code: "αρ. 50 παρ. 1 του ν. 3528/2007", Group: GroupB, GroupIndex: 1},
		{ID: "B2", Label: "Νοσήματα / Αναπηρία (μεταγγίσεις, κλπ)", Code: "αρ. 50 παρ. 2 του ν.3528/2007", Group: GroupB, GroupIndex: 2},
		{ID: "B3", Label: "Αναπηρία υπαλλήλου/τέκνου", Code: "αρ. 50 παρ. 3 ν. 3528/2007", Group: GroupB, GroupIndex: 3},
		{ID: "B4", Label: "Δικαστικός συμπαραστάτης", Code: "αρ. 50 παρ. 4 του ν. 3528/2007", Group: GroupB, GroupIndex: 4},
		{ID: "B5", Label: "Κακοήθεις νεοπλασίες", Code: "αρ. 50 παρ. 10 του ν. 3528/2007", Group: GroupB, GroupIndex: 5},
		{ID: "B6", Label: "Άδεια άνευ αποδοχών", Code: "αρ. 51 του ν. 3528/2007", Group: GroupB, GroupIndex: 6},
		{ID: "B7", Label: "Μητρότητα / Προγεννητικός έλεγχος", Code: "αρ. 52 ν. 3528/2007", Group: GroupB, GroupIndex: 7,
			RequiredDocuments: []string{"Ιατρική βεβαίωση"}},
		{ID: "B8", Label: "Διευκολύνσεις οικογενειακών υποχρεώσεων", Code: "αρ. 53 του ν. 3528/2007", Group: GroupB, GroupIndex: 8},
		{ID: "B9", Label: "Αναρρωτική πέραν των 8 ημερών", Code: "αρ. 56 παρ. 3 του ν. 3528/2007", Group: GroupB, GroupIndex: 9,
			RequiredDocuments: []string{"Γνωμάτευση υγειονομικής επιτροπής"}},
		{ID: "B10", Label: "Υπηρεσιακή εκπαίδευση", Code: "αρ. 58 του ν. 3528/2007", Group: GroupB, GroupIndex: 10},
	}
}

func seedHolidays() []Holiday {
	return []Holiday{
		{ID: "H1", Date: "01-01", Name: "Πρωτοχρονιά", IsFixed: true},
		{ID: "H2", Date: "01-06", Name: "Θεοφάνεια", IsFixed: true},
		{ID: "H3", Date: "03-25", Name: "Εθνική Εορτή", IsFixed: true},
		{ID: "H4", Date: "05-01", Name: "Εργατική Πρωτομαγιά", IsFixed: true},
		{ID: "H5", Date: "08-15", Name: "Κοίμηση Θεοτόκου", IsFixed: true},
		{ID: "H6", Date: "10-28", Name: "Εθνική Εορτή", IsFixed: true},
		{ID: "H7", Date: "12-25", Name: "Χριστούγεννα", IsFixed: true},
		{ID: "H8", Date: "12-26", Name: "Σύναξη Θεοτόκου", IsFixed: true},
	}
}
