package models

// SeedEvents is the built-in editorial baseline: recurring Nigerian public
// holidays, international observances and historical anniversaries. It is
// loaded when no event snapshot exists yet and is merged with AI-sourced
// events by the refresh job.
func SeedEvents() []HistoricalEvent {
	return []HistoricalEvent{
		{
			ID:           "evt-jan-1",
			Title:        "New Year's Day",
			OriginalDate: "1900-01-01",
			Description:  "Public holiday opening the Gregorian year, ushered in nationwide by Cross Over services on New Year's Eve and marked by festivities and family gatherings.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-jan-15",
			Title:        "Armed Forces Remembrance Day",
			OriginalDate: "1900-01-15",
			Description:  "Solemn day honouring veterans of both World Wars and the Nigerian Civil War, dated to the Biafran surrender of January 15, 1970, with wreath-laying at the National Cenotaph in Abuja.",
			Category:     "Remembrance",
		},
		{
			ID:           "evt-feb-14",
			Title:        "Valentine's Day",
			OriginalDate: "1900-02-14",
			Description:  "Widely observed celebration of love across Nigerian cities, now a major commercial and social occasion with gifts, concerts and dinners.",
			Category:     "Culture",
		},
		{
			ID:           "evt-mar-08",
			Title:        "International Women's Day",
			OriginalDate: "1900-03-08",
			Description:  "National celebration of the achievements of Nigerian women, featuring symposiums and campaigns for gender equality from Funmilayo Ransome-Kuti to Ngozi Okonjo-Iweala.",
			Category:     "International",
		},
		{
			ID:           "evt-mar-21",
			Title:        "World Poetry Day",
			OriginalDate: "1900-03-21",
			Description:  "Celebration of linguistic diversity and poetry, marked in Nigeria's rich literary scene by readings, performances and workshops.",
			Category:     "Culture",
		},
		{
			ID:           "evt-apr-07",
			Title:        "World Health Day",
			OriginalDate: "1900-04-07",
			Description:  "WHO-led day used by the Ministry of Health and NGOs to launch campaigns on malaria prevention, maternal health and universal health coverage.",
			Category:     "Health",
		},
		{
			ID:           "evt-apr-22",
			Title:        "World Earth Day",
			OriginalDate: "1900-04-22",
			Description:  "Environmental awareness day focused on desertification in the North and oil pollution in the Niger Delta, marked by tree planting and cleanup exercises.",
			Category:     "Environment",
		},
		{
			ID:           "evt-may-01",
			Title:        "Workers' Day",
			OriginalDate: "1900-05-01",
			Description:  "Labour Day public holiday with rallies organised by the NLC and TUC where labour leaders press the government on wages and working conditions.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-may-27",
			Title:        "Children's Day",
			OriginalDate: "1900-05-27",
			Description:  "Public holiday for schoolchildren celebrated with march-pasts, excursions and parties, and a reminder of the rights of the Nigerian child.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-may-29",
			Title:        "Presidential Inauguration Day",
			OriginalDate: "1999-05-29",
			Description:  "The day Nigeria returned to civil rule in 1999 and the constitutionally mandated date for swearing in Presidents and Governors every four years.",
			Category:     "Politics",
		},
		{
			ID:           "evt-jun-12",
			Title:        "Democracy Day",
			OriginalDate: "1993-06-12",
			Description:  "Commemorates the annulled June 12, 1993 presidential election won by MKO Abiola, honouring the struggle for democratic governance.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-jun-20",
			Title:        "World Refugee Day",
			OriginalDate: "1900-06-20",
			Description:  "International day highlighting the plight of displaced persons, resonant in Nigeria given internal displacement in the North East.",
			Category:     "International",
		},
		{
			ID:           "evt-jun-26",
			Title:        "Nupe Cultural Day",
			OriginalDate: "1900-06-26",
			Description:  "Celebration of Nupe heritage in Niger State with traditional regalia, music and royal pageantry centred on the Etsu Nupe's court.",
			Category:     "Culture",
		},
		{
			ID:           "evt-jul-06",
			Title:        "Nigerian Army Day / Biafra War Start",
			OriginalDate: "1967-07-06",
			Description:  "Marks the outbreak of the Nigerian Civil War in 1967, observed by the Army as a day of remembrance and reflection on national unity.",
			Category:     "Military",
		},
		{
			ID:           "evt-jul-20",
			Title:        "International Chess Day",
			OriginalDate: "1900-07-20",
			Description:  "Day celebrating chess worldwide, boosted in Nigeria by the Chess in Slums movement and a growing competitive scene.",
			Category:     "Sports",
		},
		{
			ID:           "evt-aug-12",
			Title:        "International Youth Day",
			OriginalDate: "1900-08-12",
			Description:  "UN observance amplifying youth voices, significant in a country where the median age is under twenty.",
			Category:     "International",
		},
		{
			ID:           "evt-aug-19",
			Title:        "World Humanitarian Day",
			OriginalDate: "1900-08-19",
			Description:  "Honours aid workers, with particular weight in Nigeria where humanitarian operations in the North East carry real risk.",
			Category:     "International",
		},
		{
			ID:           "evt-sep-01",
			Title:        "New Legal Year",
			OriginalDate: "1900-09-01",
			Description:  "Ceremonial opening of the courts' calendar, marked by a special session of the Supreme Court and church and mosque services for the bench and bar.",
			Category:     "Legal",
		},
		{
			ID:           "evt-sep-22",
			Title:        "National Environmental Sanitation Day",
			OriginalDate: "1900-09-22",
			Description:  "Observance descended from the monthly sanitation exercises, promoting clean surroundings and public-health awareness.",
			Category:     "Environment",
		},
		{
			ID:           "evt-sep-27",
			Title:        "National Tourism Day",
			OriginalDate: "1900-09-27",
			Description:  "Showcases destinations from Obudu to Yankari and the cultural festivals that anchor Nigeria's tourism calendar.",
			Category:     "Tourism",
		},
		{
			ID:           "evt-oct-01",
			Title:        "Independence Day",
			OriginalDate: "1960-10-01",
			Description:  "Nigeria's national day, commemorating independence from Britain on October 1, 1960, with a presidential broadcast and parades.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-oct-05",
			Title:        "World Teachers' Day",
			OriginalDate: "1900-10-05",
			Description:  "Honours the teaching profession and spotlights recurring debates over teacher welfare and education funding.",
			Category:     "Education",
		},
		{
			ID:           "evt-oct-10",
			Title:        "World Mental Health Day",
			OriginalDate: "1900-10-10",
			Description:  "Awareness day used by Nigerian advocates to push against stigma and for implementation of the Mental Health Act.",
			Category:     "Health",
		},
		{
			ID:           "evt-oct-20",
			Title:        "#EndSARS Memorial",
			OriginalDate: "2020-10-20",
			Description:  "Anniversary of the Lekki Toll Gate shooting during the 2020 protests against police brutality, marked by processions and candlelight vigils.",
			Category:     "Remembrance",
		},
		{
			ID:           "evt-nov-16",
			Title:        "National Youth Day",
			OriginalDate: "2020-11-16",
			Description:  "Declared in 2020 to celebrate the contributions of young Nigerians to national development.",
			Category:     "Culture",
		},
		{
			ID:           "evt-nov-20",
			Title:        "Universal Children's Day",
			OriginalDate: "1900-11-20",
			Description:  "UN observance for child rights, a lens on out-of-school children and child-protection gaps in Nigeria.",
			Category:     "International",
		},
		{
			ID:           "evt-dec-01",
			Title:        "World AIDS Day",
			OriginalDate: "1900-12-01",
			Description:  "Day of solidarity with people living with HIV, marked by testing drives and campaigns by NACA and partners.",
			Category:     "Health",
		},
		{
			ID:           "evt-dec-10",
			Title:        "Human Rights Day",
			OriginalDate: "1900-12-10",
			Description:  "Anniversary of the Universal Declaration of Human Rights, observed by civil society groups tracking rights abuses.",
			Category:     "International",
		},
		{
			ID:           "evt-dec-24",
			Title:        "Christmas Eve",
			OriginalDate: "1900-12-24",
			Description:  "Evening of carols and travel as the great December homecoming to the villages reaches its peak.",
			Category:     "Religious",
		},
		{
			ID:           "evt-dec-25",
			Title:        "Christmas Day",
			OriginalDate: "1900-12-25",
			Description:  "Public holiday celebrating Christmas with church services, feasting and the Detty December season in full swing.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-dec-26",
			Title:        "Boxing Day",
			OriginalDate: "1900-12-26",
			Description:  "Public holiday extending the Christmas celebration, a day for visits, outings and football.",
			Category:     "Public Holiday",
		},
		{
			ID:           "evt-dec-31",
			Title:        "New Year's Eve",
			OriginalDate: "1900-12-31",
			Description:  "Cross Over night, when churches nationwide hold watch services to pray the old year out and the new year in.",
			Category:     "Culture",
		},
		{
			ID:           "evt-aba-women",
			Title:        "Aba Women's Riot",
			OriginalDate: "1929-11-24",
			Description:  "The 1929 Women's War, in which market women across the South East rose against colonial taxation, a landmark of anti-colonial resistance.",
			Category:     "History",
		},
		{
			ID:           "evt-ekumeku",
			Title:        "Ekumeku Resistance Begins",
			OriginalDate: "1883-01-01",
			Description:  "Start of the two-decade Ekumeku guerrilla movement by Anioma communities against the Royal Niger Company.",
			Category:     "History",
		},
		{
			ID:           "evt-satiru",
			Title:        "Satiru Uprising",
			OriginalDate: "1906-02-01",
			Description:  "Mahdist revolt near Sokoto against early colonial rule, crushed with severe reprisals in 1906.",
			Category:     "History",
		},
		{
			ID:           "evt-zungeru",
			Title:        "Zungeru Anti-Colonial Revolt",
			OriginalDate: "1911-01-01",
			Description:  "Resistance around the early colonial capital of Zungeru against forced labour and taxation.",
			Category:     "History",
		},
		{
			ID:           "evt-kano-tax",
			Title:        "Kano Women's Anti-Poll Tax Protest",
			OriginalDate: "1938-01-01",
			Description:  "Protest by Kano women against colonial poll taxation, part of a long tradition of northern women's activism.",
			Category:     "History",
		},
		{
			ID:           "evt-1945-strike",
			Title:        "1945 General Strike",
			OriginalDate: "1945-06-22",
			Description:  "Forty-four day nationwide strike led by Michael Imoudu that shook colonial authority and energised the nationalist movement.",
			Category:     "Labour",
		},
		{
			ID:           "evt-abeokuta",
			Title:        "Abeokuta Women's Revolt",
			OriginalDate: "1946-01-01",
			Description:  "Campaign by the Abeokuta Women's Union under Funmilayo Ransome-Kuti that forced the abdication of the Alake over unjust taxation.",
			Category:     "History",
		},
		{
			ID:           "evt-enugu-miners",
			Title:        "Enugu Coal Miners' Strike",
			OriginalDate: "1949-11-18",
			Description:  "Shooting of striking miners at the Iva Valley colliery in 1949, a turning point that radicalised the independence struggle.",
			Category:     "History",
		},
		{
			ID:           "evt-tiv-riots",
			Title:        "Tiv Riots",
			OriginalDate: "1960-01-01",
			Description:  "Unrest in Tivland at independence over political marginalisation in the Northern Region.",
			Category:     "Politics",
		},
		{
			ID:           "evt-aba-post",
			Title:        "Aba Anti-Tax Protest (Post-Independence)",
			OriginalDate: "1967-01-01",
			Description:  "Post-independence tax protests in Aba, echoing the city's long history of popular resistance.",
			Category:     "History",
		},
		{
			ID:           "evt-asaba",
			Title:        "Asaba Massacre",
			OriginalDate: "1967-10-07",
			Description:  "Killing of hundreds of Asaba men and boys by federal troops in October 1967, one of the darkest episodes of the Civil War.",
			Category:     "War",
		},
		{
			ID:           "evt-odi",
			Title:        "Odi Massacre",
			OriginalDate: "1999-11-20",
			Description:  "Destruction of the Bayelsa town of Odi by soldiers in November 1999, weeks into the Fourth Republic.",
			Category:     "History",
		},
		{
			ID:           "evt-jos",
			Title:        "Jos Crises (First Major Outbreak)",
			OriginalDate: "2001-09-07",
			Description:  "First large-scale outbreak of the Jos communal crises in September 2001, opening a long cycle of Plateau violence.",
			Category:     "Conflict",
		},
		{
			ID:           "evt-zaria",
			Title:        "Zaria Massacre",
			OriginalDate: "2015-12-12",
			Description:  "Clash between the Army and the Islamic Movement of Nigeria in Zaria in December 2015, with hundreds of deaths documented.",
			Category:     "Conflict",
		},
		{
			ID:           "evt-niger-delta",
			Title:        "Niger Delta Militancy Era Start",
			OriginalDate: "1999-01-01",
			Description:  "Beginning of the armed militancy phase in the oil-producing Niger Delta at the turn of the Fourth Republic.",
			Category:     "Conflict",
		},
	}
}
