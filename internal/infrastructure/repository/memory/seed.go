package memory

import "github.com/riskibarqy/ro-transfer-hub/internal/domain/club"

// SeedAliases is the curated alias set for Romanian clubs. Parent, phoenix
// and reserve clubs stay distinct: FC Dinamo 1948, CS Dinamo Bucuresti and
// ACS FC Dinamo Bucuresti are three different clubs.
func SeedAliases() []club.Alias {
	return []club.Alias{
		{Variant: "FCSB", Standard: "FCSB"},
		{Variant: "FC Dinamo", Standard: "FC Dinamo 1948"},
		{Variant: "Dinamo", Standard: "FC Dinamo 1948"},
		{Variant: "Dinamo Bucharest", Standard: "FC Dinamo 1948"},
		{Variant: "CS Dinamo Buc.", Standard: "CS Dinamo Bucuresti"},
		{Variant: "CS Dinamo", Standard: "CS Dinamo Bucuresti"},
		{Variant: "ACS FC Dinamo", Standard: "ACS FC Dinamo Bucuresti"},
		{Variant: "Rapid", Standard: "FC Rapid 1923"},
		{Variant: "Rapid Bucharest", Standard: "FC Rapid 1923"},
		{Variant: "Univ. Craiova", Standard: "CS Universitatea Craiova"},
		{Variant: "CS U Craiova", Standard: "CS Universitatea Craiova"},
		{Variant: "Universitatea Craiova", Standard: "CS Universitatea Craiova"},
		{Variant: "FC U Craiova", Standard: "FC U Craiova 1948"},
		{Variant: "FCU Craiova", Standard: "FC U Craiova 1948"},
		{Variant: "U Cluj", Standard: "FC Universitatea Cluj"},
		{Variant: "Universitatea Cluj", Standard: "FC Universitatea Cluj"},
		{Variant: "Farul", Standard: "FCV Farul Constanta"},
		{Variant: "FCV Farul", Standard: "FCV Farul Constanta"},
		{Variant: "FC Farul 1920", Standard: "FCV Farul Constanta"},
		{Variant: "Viitorul", Standard: "FC Viitorul Constanta"},
		{Variant: "FC Viitorul", Standard: "FC Viitorul Constanta"},
		{Variant: "Academia Hagi", Standard: "FC Viitorul Constanta"},
		{Variant: "Sepsi", Standard: "Sepsi OSK Sf. Gheorghe"},
		{Variant: "Sepsi OSK", Standard: "Sepsi OSK Sf. Gheorghe"},
		{Variant: "Otelul", Standard: "SC Otelul Galati"},
		{Variant: "Otelul Galati", Standard: "SC Otelul Galati"},
		{Variant: "Petrolul", Standard: "Petrolul Ploiesti"},
		{Variant: "FC Arges", Standard: "ACSC FC Arges"},
		{Variant: "Arges", Standard: "ACSC FC Arges"},
		{Variant: "UTA", Standard: "UTA Arad"},
		{Variant: "Hermannstadt", Standard: "FC Hermannstadt"},
		{Variant: "Botosani", Standard: "FC Botosani"},
		{Variant: "Voluntari", Standard: "FC Voluntari"},
		{Variant: "Poli Iasi", Standard: "ACSM Politehnica Iasi"},
		{Variant: "ACSM Poli Iasi", Standard: "ACSM Politehnica Iasi"},
		{Variant: "CSM Politehnica Iasi", Standard: "ACSM Politehnica Iasi"},
		{Variant: "Chindia", Standard: "AFC Chindia Targoviste"},
		{Variant: "Mioveni", Standard: "CS Mioveni"},
		{Variant: "Slobozia", Standard: "AFC Unirea 04 Slobozia"},
		{Variant: "Unirea Slobozia", Standard: "AFC Unirea 04 Slobozia"},
		{Variant: "Gloria Buzau", Standard: "ASFC Buzau (2016-2025)"},
		{Variant: "FC Buzau", Standard: "ASFC Buzau (2016-2025)"},
		{Variant: "SCM Gloria Buzau", Standard: "ASFC Buzau (2016-2025)"},
		{Variant: "Minaur", Standard: "Minaur Baia Mare"},
		{Variant: "CS Minaur", Standard: "Minaur Baia Mare"},
		{Variant: "Metaloglobus", Standard: "FC Metaloglobus Bucharest"},
		{Variant: "Metaloglob.", Standard: "FC Metaloglobus Bucharest"},
		{Variant: "Concordia", Standard: "Concordia Chiajna"},
		{Variant: "M. Ciuc", Standard: "FK Csikszereda Miercurea Ciuc"},
		{Variant: "FK Csikszereda", Standard: "FK Csikszereda Miercurea Ciuc"},
		{Variant: "Selimbar", Standard: "CSC 1599 Selimbar"},
		{Variant: "CSC Selimbar", Standard: "CSC 1599 Selimbar"},
		{Variant: "Dumbravita", Standard: "CSC Dumbravita"},
		{Variant: "Resita", Standard: "ACSM Resita"},
		{Variant: "CSM Resita", Standard: "ACSM Resita"},
		{Variant: "Slatina", Standard: "CSM Slatina"},
		{Variant: "Corvinul", Standard: "Corvinul Hunedoara"},
		{Variant: "Steaua", Standard: "CSA Steaua"},
		{Variant: "Metalul Buzau", Standard: "AFC Metalul Buzau"},
		{Variant: "Ceahlaul", Standard: "CSM Ceahlaul Piatra Neamt"},
		{Variant: "Unirea Dej", Standard: "Unirea Dej"},
		{Variant: "Viitorul Tg.Jiu", Standard: "Viitorul Pandurii Targu Jiu (- 2024)"},
		{Variant: "FC Bihor", Standard: "FC Bihor 1902"},
		{Variant: "Astra Giur.", Standard: "Astra Giurgiu (- 2024)"},
		{Variant: "Astra Giurgiu", Standard: "Astra Giurgiu (- 2024)"},
		{Variant: "Gaz Metan", Standard: "Gaz Metan Medias (- 2022)"},
		{Variant: "Academica", Standard: "Academica Clinceni"},
		{Variant: "Academica Clince", Standard: "Academica Clinceni"},
		{Variant: "D. Calarasi", Standard: "Dunarea Calarasi"},
		{Variant: "Ripensia", Standard: "Ripensia Timisoara"},
		{Variant: "Aerostar", Standard: "Aerostar Bacau"},
		{Variant: "AFC Turris", Standard: "AFC Turris-Oltul Turnu Magurele (- 2021)"},
		{Variant: "Progresul Sp.", Standard: "AFC Progresul 1944 Spartac"},
		{Variant: "Corona Bv.", Standard: "Corona Brasov"},
		{Variant: "FC Brasov-SR", Standard: "SR Brasov"},
		{Variant: "Dacia U. Braila", Standard: "Dacia Unirea Braila"},
		{Variant: "Comuna Recea", Standard: "ACS Fotbal Comuna Recea (- 2021)"},
		{Variant: "Ac. Recea", Standard: "ACS Fotbal Comuna Recea (- 2021)"},
		{Variant: "ACS Fotbal Comuna Recea", Standard: "ACS Fotbal Comuna Recea (- 2021)"},
		{Variant: "FC Gl. Bistrita", Standard: "Gloria Bistrita"},
		{Variant: "CSM Olimpia SM", Standard: "CSM Olimpia Satu Mare"},
		{Variant: "Olimpia SM", Standard: "CSM Olimpia Satu Mare"},
		{Variant: "CSM Focsani", Standard: "CSM Focsani 2007"},
		{Variant: "Pandurii", Standard: "Pandurii Targu Jiu (- 2022)"},
		{Variant: "SSU Poli", Standard: "SSU Politehnica Timisoara"},
		{Variant: "Poli Timisoara", Standard: "SSU Politehnica Timisoara"},
		{Variant: "CNP Timisoara", Standard: "CNP Timisoara"},
		{Variant: "FCSB II", Standard: "FCSB II"},
		{Variant: "Dinamo II", Standard: "FC Dinamo 1948 II"},
		{Variant: "CS D. Buk. U17", Standard: "CS Dinamo Bucuresti U17"},
		{Variant: "CS Dinamo U19", Standard: "CS Dinamo Bucuresti U19"},
		{Variant: "Univ. Craiova II", Standard: "CS Universitatea Craiova II"},
		{Variant: "CS U Craiova II", Standard: "CS Universitatea Craiova II"},
		{Variant: "CS U Craiova YL", Standard: "CS Universitatea Craiova U19"},
		{Variant: "Clinceni II", Standard: "Academica Clinceni II"},
		{Variant: "Clinceni U19", Standard: "Academica Clinceni U19"},
		{Variant: "Chiajna II", Standard: "Concordia Chiajna II"},
		{Variant: "Chiajna U18", Standard: "Concordia Chiajna U18"},
		{Variant: "Voluntari U18", Standard: "FC Voluntari U18"},
		{Variant: "FC Voluntari II", Standard: "FC Voluntari II"},
		{Variant: "U Cluj II", Standard: "FC Universitatea Cluj II"},
		{Variant: "U Cluj U18", Standard: "FC Universitatea Cluj U18"},
		{Variant: "U Cluj Youth", Standard: "FC Universitatea Cluj Youth"},
		{Variant: "Gaz Metan II", Standard: "Gaz Metan Medias II"},
		{Variant: "Gaz Metan U19", Standard: "Gaz Metan Medias U19"},
		{Variant: "Csikszereda II", Standard: "FK Csikszereda Miercurea Ciuc II"},
		{Variant: "Csikszereda U19", Standard: "FK Csikszereda Miercurea Ciuc U19"},
		{Variant: "Ripensia U19", Standard: "Ripensia Timisoara U19"},
		{Variant: "D. Calarasi U19", Standard: "Dunarea Calarasi U19"},
		{Variant: "DU Braila U19", Standard: "Dacia Unirea Braila U19"},
		{Variant: "Poli Tim. U19", Standard: "SSU Politehnica Timisoara U19"},
		{Variant: "Sepsi OSK II", Standard: "Sepsi OSK II"},
		{Variant: "Sepsi U19", Standard: "Sepsi OSK U19"},
		{Variant: "Sepsi OSK Sf. Gheorghe U19", Standard: "Sepsi OSK U19"},
	}
}
